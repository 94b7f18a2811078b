package services

import (
	"context"
	"sync"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/mylogger"
)

// resolveFunc re-resolves a user id into its current profile.
type resolveFunc func(ctx context.Context, userId string) (*model.UserProfile, error)

// SessionStore is the single owner of resolved session identities. Reads go
// through Current; the only mutation entrypoints are Refresh and the broker
// event loop, which keeps every session transition auditable.
type SessionStore struct {
	mu       sync.RWMutex
	mylog    mylogger.Logger
	resolve  resolveFunc
	sessions map[string]*model.UserProfile
}

func NewSessionStore(mylog mylogger.Logger, resolve resolveFunc) *SessionStore {
	return &SessionStore{
		mylog:    mylog,
		resolve:  resolve,
		sessions: make(map[string]*model.UserProfile),
	}
}

func (st *SessionStore) Current(userId string) (*model.UserProfile, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	profile, ok := st.sessions[userId]
	return profile, ok
}

// Refresh re-resolves the profile behind a session. A profile that no longer
// exists drops the session.
func (st *SessionStore) Refresh(ctx context.Context, userId string) error {
	profile, err := st.resolve(ctx, userId)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if profile == nil {
		delete(st.sessions, userId)
		return nil
	}
	st.sessions[userId] = profile
	return nil
}

func (st *SessionStore) drop(userId string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, userId)
}

// Run consumes session change notifications until ctx is canceled. External
// sign-outs drop the local session and notify connected dashboards.
func (st *SessionStore) Run(ctx context.Context, events <-chan dto.SessionEvent, notifier ports.IDashboardNotifier) {
	log := st.mylog.Action("session_events")

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				log.Warn("session event stream closed")
				return
			}
			if event.Event != dto.SessionSignedOut {
				continue
			}
			st.drop(event.UserId)
			notifier.SessionRevoked(event.UserId)
			log.Info("session revoked", "user_id", event.UserId)
		}
	}
}
