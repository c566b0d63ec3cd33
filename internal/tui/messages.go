package tui

import (
	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/models"
)

type rememberedMsg struct {
	driver string
	err    error
}

type loginResultMsg struct {
	driver string
	err    error
}

// activatedMsg carries the result of the activation numbered seq.
type activatedMsg struct {
	session *service.SyncSession
	seq     uint64
}

type viewMsg struct {
	view models.NotificationView
}

type loggedOutMsg struct{}
