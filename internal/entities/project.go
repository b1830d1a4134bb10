// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// maxWorkItemsPerProject caps the owned work item collection.
const maxWorkItemsPerProject = 20

// Project is the aggregate root owning a bounded work item collection.
type Project struct {
	Entity
	Name        string
	Description string
	OwnerID     uuid.UUID
	WorkItems   []*WorkItem
	Members     []ProjectMember
}

// ProjectSummary is a compact projection for owner listings.
type ProjectSummary struct {
	ID            uuid.UUID
	Name          string
	Description   string
	OwnerID       uuid.UUID
	WorkItemCount int
}

// NewProject constructs a project.
func NewProject(id uuid.UUID, name, description string, ownerID uuid.UUID, now time.Time) *Project {
	return &Project{
		Entity:      NewEntity(id, now),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}
}

// Equal reports identity equality with nil-safe semantics: two projects with
// the same ID are equal regardless of other state.
func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.sameIdentity(&other.Entity)
}

// AddWorkItem appends a work item, enforcing the 20-item cap.
func (p *Project) AddWorkItem(item *WorkItem) error {
	if len(p.WorkItems) >= maxWorkItemsPerProject {
		return NewDomainError("Project cannot have more than 20 work items")
	}
	p.WorkItems = append(p.WorkItems, item)
	return nil
}

// RemoveWorkItem removes a work item; only completed items may leave the
// aggregate.
func (p *Project) RemoveWorkItem(item *WorkItem) error {
	if item.Status != StatusCompleted {
		return NewDomainError("Cannot remove pending or in-progress work items")
	}
	for i, wi := range p.WorkItems {
		if wi.Equal(item) {
			p.WorkItems = append(p.WorkItems[:i], p.WorkItems[i+1:]...)
			break
		}
	}
	return nil
}

// AddMember appends a project member. Membership is unconstrained.
func (p *Project) AddMember(userID uuid.UUID, now time.Time) *ProjectMember {
	m := NewProjectMember(uuid.New(), p.ID, userID, now)
	p.Members = append(p.Members, *m)
	return m
}
