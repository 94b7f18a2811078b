package ports

// IDashboardNotifier pushes realtime notices to connected admin dashboards.
type IDashboardNotifier interface {
	SessionRevoked(userId string)
	ListInvalidated(list string)
}
