package ws

import (
	"context"
	"encoding/json"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"

	"github.com/gorilla/websocket"
)

type Client struct {
	ctx    context.Context
	conn   *websocket.Conn
	dis    *Dispatcher
	egress chan dto.DashboardEvent
	userId string
}

// searchMessage is the only inbound message the dashboard sends.
type searchMessage struct {
	Type    string `json:"type"`
	Payload struct {
		Role string `json:"role"`
		Q    string `json:"q"`
	} `json:"payload"`
}

func NewClient(ctx context.Context, conn *websocket.Conn, dis *Dispatcher, userId string) *Client {
	return &Client{
		ctx:    ctx,
		conn:   conn,
		dis:    dis,
		egress: make(chan dto.DashboardEvent, 16),
		userId: userId,
	}
}

// Send queues an event for the client. A client that cannot keep up loses
// events rather than blocking the broadcast.
func (c *Client) Send(event dto.DashboardEvent) {
	select {
	case c.egress <- event:
	default:
	}
}

func (c *Client) ReadMessage() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)

	// loop forever
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.dis.log.Action("wsRead").Warn("unexpected websocket close")
			}
			break
		}

		var req searchMessage
		if err := json.Unmarshal(payload, &req); err != nil {
			c.dis.log.Action("wsRead").Error("cannot decode inbound message", err)
			continue
		}

		if req.Type == "users_search" && c.dis.usersService != nil {
			filters := dto.UserFilters{Role: req.Payload.Role, Search: req.Payload.Q}
			c.dis.usersService.SearchDebounced(filters, func(users []model.UserProfile, err error) {
				if err != nil {
					c.Send(dto.DashboardEvent{Type: "users_search_error", Payload: err.Error()})
					return
				}
				c.Send(dto.DashboardEvent{Type: "users_search_result", Payload: users})
			})
		}
	}
}

func (c *Client) WriteMessage() {
	for {
		select {
		case <-c.ctx.Done():
			c.conn.Close()
			return
		case event, ok := <-c.egress:
			if !ok {
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				c.dis.log.Action("wsWrite").Error("cannot write event", err)
				return
			}
		}
	}
}
