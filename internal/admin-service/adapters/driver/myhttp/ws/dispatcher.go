package ws

import (
	"context"
	"net/http"
	"sync"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/services"
	"ride-hail-admin/internal/mylogger"

	"github.com/gorilla/websocket"
)

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage a map of clients
type ClientList map[*Client]bool

// Dispatcher owns the set of connected dashboard clients. It implements
// ports.IDashboardNotifier so the services can push invalidations without
// knowing about websockets.
type Dispatcher struct {
	clients      ClientList
	usersService *services.UsersService
	sync.RWMutex
	log mylogger.Logger
}

func NewDispatcher(log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		clients: make(ClientList),
		log:     log,
	}
}

// SetUsersService breaks the construction cycle: the dispatcher is the
// notifier the users service is built with, and also routes search messages
// back into it.
func (d *Dispatcher) SetUsersService(usersService *services.UsersService) {
	d.usersService = usersService
}

func (d *Dispatcher) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("wsHandler")
		userId := r.Header.Get("X-UserId")

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		// the request context dies with the handler; the connection outlives it
		ctx := context.Background()
		client := NewClient(ctx, conn, d, userId)
		d.AddClient(client)
		go client.ReadMessage()
		go client.WriteMessage()

		log.Info("dashboard connected", "user_id", userId)
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		client.conn.Close()
		delete(d.clients, client)
	}
}

// SessionRevoked tells every dashboard that a session was signed out
// elsewhere.
func (d *Dispatcher) SessionRevoked(userId string) {
	d.broadcast(dto.DashboardEvent{Type: "session_revoked", UserId: userId})
}

// ListInvalidated tells dashboards a list changed server-side and should be
// re-fetched.
func (d *Dispatcher) ListInvalidated(list string) {
	d.broadcast(dto.DashboardEvent{Type: "list_invalidated", List: list})
}

func (d *Dispatcher) broadcast(event dto.DashboardEvent) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		client.Send(event)
	}
}
