package dto

// SessionEvent travels over the session_events exchange. Only sign-outs are
// published today; Event is kept open for future session lifecycle states.
type SessionEvent struct {
	UserId string `json:"user_id"`
	Event  string `json:"event"`
}

const SessionSignedOut = "signed_out"

// DashboardEvent is pushed to connected admin dashboards over the websocket.
type DashboardEvent struct {
	Type string `json:"type"`
	// List names the invalidated list for type "list_invalidated".
	List string `json:"list,omitempty"`
	// UserId identifies the revoked session for type "session_revoked".
	UserId string `json:"user_id,omitempty"`
	// Payload carries query results for type "users_search_result".
	Payload any `json:"payload,omitempty"`
}
