// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMember links a user to a project.
type ProjectMember struct {
	Entity
	ProjectID uuid.UUID
	UserID    uuid.UUID
	JoinedAt  time.Time
}

// NewProjectMember constructs a membership record joined at the given time.
func NewProjectMember(id, projectID, userID uuid.UUID, now time.Time) *ProjectMember {
	return &ProjectMember{
		Entity:    NewEntity(id, now),
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  now.UTC(),
	}
}
