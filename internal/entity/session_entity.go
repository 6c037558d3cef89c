package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artifact is the current generated component pair of a session. It is always
// written as a whole: either both fields come from one sanitizer result, or the
// previous pair stays untouched.
type Artifact struct {
	Jsx string `json:"jsx"`
	Css string `json:"css"`
}

func (a Artifact) IsEmpty() bool {
	return a.Jsx == "" && a.Css == ""
}

type Session struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Artifact  Artifact
	CreatedAt time.Time
	UpdatedAt *time.Time
}
