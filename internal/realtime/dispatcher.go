package realtime

import (
	"encoding/json"
	"log/slog"

	"daily-planner-api/internal/models"
)

// Event is the websocket message pushed for every notification.
type Event struct {
	Type         string              `json:"type"`
	Email        string              `json:"email"`
	Notification models.Notification `json:"notification"`
	Version      int                 `json:"version"`
}

// Dispatcher fans notifications out to the toast holder and to the identity's websocket clients.
type Dispatcher struct {
	hub     *Hub
	toaster *Toaster
	log     *slog.Logger
}

func NewDispatcher(hub *Hub, toaster *Toaster, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{hub: hub, toaster: toaster, log: log}
}

// Notify implements app.Notifier.
func (d *Dispatcher) Notify(identity models.Identity, n models.Notification) {
	if d.toaster != nil {
		d.toaster.Show(n)
	}
	if d.hub == nil {
		return
	}
	msg, err := json.Marshal(Event{
		Type:         "notification",
		Email:        identity.Email,
		Notification: n,
		Version:      1,
	})
	if err != nil {
		d.log.Warn("encode notification", "error", err)
		return
	}
	sent := d.hub.Broadcast(identity.Email, msg)
	d.log.Debug("notification pushed", "kind", n.Kind, "clients", sent)
}
