package exclusion

import "github.com/KirkDiggler/secretsanta/internal/models"

type SaveExclusionsInput struct {
	EventID    string
	Exclusions []*models.Exclusion
}

type GetExclusionsForEventInput struct {
	EventID string
}

type DeleteExclusionsForEventInput struct {
	EventID string
}
