package entities

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestItem(projectID uuid.UUID, priority WorkItemPriority, now time.Time) *WorkItem {
	return NewWorkItem(uuid.New(), "task", "", now.AddDate(0, 1, 0), priority, projectID, uuid.New(), now)
}

func TestProject_AddWorkItemCap(t *testing.T) {
	now := time.Now().UTC()
	p := NewProject(uuid.New(), "alpha", "", uuid.New(), now)

	for i := 0; i < 20; i++ {
		require.NoError(t, p.AddWorkItem(newTestItem(p.ID, PriorityLow, now)), "add %d", i+1)
	}

	err := p.AddWorkItem(newTestItem(p.ID, PriorityLow, now))
	require.ErrorIs(t, err, ErrDomainRule)
	require.EqualError(t, err, fmt.Sprintf("%s: Project cannot have more than 20 work items", ErrDomainRule))
	require.Len(t, p.WorkItems, 20, "count stays at the cap")
}

func TestProject_RemoveWorkItemRequiresCompleted(t *testing.T) {
	now := time.Now().UTC()
	p := NewProject(uuid.New(), "alpha", "", uuid.New(), now)

	item := newTestItem(p.ID, PriorityMedium, now)
	require.NoError(t, p.AddWorkItem(item))

	err := p.RemoveWorkItem(item)
	require.ErrorIs(t, err, ErrDomainRule)
	require.Len(t, p.WorkItems, 1)

	item.UpdateStatus(StatusCompleted, uuid.New(), now)
	require.NoError(t, p.RemoveWorkItem(item))
	require.Empty(t, p.WorkItems)
}

func TestProject_AddMember(t *testing.T) {
	now := time.Now().UTC()
	p := NewProject(uuid.New(), "alpha", "", uuid.New(), now)

	userID := uuid.New()
	m := p.AddMember(userID, now)

	require.Len(t, p.Members, 1)
	require.Equal(t, p.ID, m.ProjectID)
	require.Equal(t, userID, m.UserID)
	require.Equal(t, now, m.JoinedAt)
}
