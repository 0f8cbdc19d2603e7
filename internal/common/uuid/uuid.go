package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/secretsanta/internal/common/uuid UUID

type UUID interface {
	// NewUUID returns an identifier for a stored record
	NewUUID() string

	// NewLinkID returns an unguessable identifier for a shareable link
	NewLinkID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// NewLinkID returns a random UUID without dashes, easier to paste into chat
func (d *DefaultUUID) NewLinkID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
