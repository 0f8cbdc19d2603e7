package event

import "github.com/KirkDiggler/secretsanta/internal/models"

type SaveEventInput struct {
	Event *models.Event
}

type GetEventInput struct {
	EventID string
}

type GetEventByPublicIDInput struct {
	PublicID string
}

type GetEventByAdminIDInput struct {
	AdminID string
}

type DeleteEventInput struct {
	EventID string
}
