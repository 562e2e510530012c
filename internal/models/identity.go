package models

// Identity is the locally declared user. It namespaces storage and is not a security boundary.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NotificationKind distinguishes completion rewards from theme unlocks
type NotificationKind string

const (
	KindTask  NotificationKind = "task"
	KindTheme NotificationKind = "theme"
)

// Notification is an outbox event produced by a state transition and consumed once by a front-end.
type Notification struct {
	ID       int64            `json:"id"`
	Kind     NotificationKind `json:"kind"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	Priority Priority         `json:"priority,omitempty"`
	Points   int              `json:"points,omitempty"`
}
