package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatEntry is one transcript line of a session. Entries are append-only;
// they are only ever removed together with their session.
type ChatEntry struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Message   string
	CreatedAt time.Time
}
