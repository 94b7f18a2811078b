package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/myerrors"
)

func newUsersService(repo *fakeProfilesRepo, notifier *fakeNotifier, debounce time.Duration) *UsersService {
	return NewUsersService(context.Background(), nopLogger{}, repo, notifier, 100, NewDebouncer(debounce))
}

func TestListUsersValidatesAndClamps(t *testing.T) {
	repo := &fakeProfilesRepo{}
	svc := newUsersService(repo, &fakeNotifier{}, time.Millisecond)

	if _, err := svc.List(context.Background(), dto.UserFilters{Role: "superuser"}); !errors.Is(err, myerrors.ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}

	if _, err := svc.List(context.Background(), dto.UserFilters{Role: "all", Limit: 100000}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.gotFilters.Role != "" {
		t.Fatalf("role filter = %q, want empty for all", repo.gotFilters.Role)
	}
	if repo.gotFilters.Limit != 100 {
		t.Fatalf("limit = %d, want clamped to 100", repo.gotFilters.Limit)
	}
}

func TestChangeRoleRequiresConfirmationAndValidRole(t *testing.T) {
	repo := &fakeProfilesRepo{}
	notifier := &fakeNotifier{}
	svc := newUsersService(repo, notifier, time.Millisecond)

	if err := svc.ChangeRole(context.Background(), testUserId, model.RoleAdmin, false); !errors.Is(err, myerrors.ErrConfirmationRequired) {
		t.Fatalf("err = %v, want ErrConfirmationRequired", err)
	}
	if err := svc.ChangeRole(context.Background(), testUserId, "root", true); !errors.Is(err, myerrors.ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
	if err := svc.ChangeRole(context.Background(), "bad-id", model.RoleAdmin, true); !errors.Is(err, myerrors.ErrInvalidId) {
		t.Fatalf("err = %v, want ErrInvalidId", err)
	}

	if err := svc.ChangeRole(context.Background(), testUserId, model.RoleDriver, true); err != nil {
		t.Fatalf("ChangeRole: %v", err)
	}
	if lists := notifier.lists(); len(lists) != 1 || lists[0] != "users" {
		t.Fatalf("users list not invalidated: %v", lists)
	}
}

func TestSearchDebouncedEmitsOncePerBurst(t *testing.T) {
	repo := &fakeProfilesRepo{
		profiles: []model.UserProfile{{Id: "u1", Email: "alice@example.com"}},
	}
	svc := newUsersService(repo, &fakeNotifier{}, 20*time.Millisecond)

	var mu sync.Mutex
	var emitted [][]model.UserProfile

	emit := func(users []model.UserProfile, err error) {
		if err != nil {
			t.Errorf("emit err: %v", err)
			return
		}
		mu.Lock()
		emitted = append(emitted, users)
		mu.Unlock()
	}

	for _, q := range []string{"a", "al", "ali", "alic", "alice"} {
		svc.SearchDebounced(dto.UserFilters{Search: q}, emit)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(emitted) != 1 {
		t.Fatalf("emitted %d results for one burst, want 1", len(emitted))
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.gotFilters.Search != "alice" {
		t.Fatalf("query ran with %q, want the last search term", repo.gotFilters.Search)
	}
}
