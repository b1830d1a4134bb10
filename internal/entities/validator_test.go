package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func projectWithItems(t *testing.T, total, high int) *Project {
	t.Helper()
	now := time.Now().UTC()
	p := NewProject(uuid.New(), "alpha", "", uuid.New(), now)
	for i := 0; i < total; i++ {
		priority := PriorityLow
		if i < high {
			priority = PriorityHigh
		}
		require.NoError(t, p.AddWorkItem(newTestItem(p.ID, priority, now)))
	}
	return p
}

func TestValidator_AllowsCreationUnderCaps(t *testing.T) {
	v := NewWorkItemValidator()
	p := projectWithItems(t, 10, 4)

	require.NoError(t, v.ValidateWorkItemCreation(p, PriorityHigh))
	require.NoError(t, v.ValidateWorkItemCreation(p, PriorityLow))
}

func TestValidator_CountCap(t *testing.T) {
	v := NewWorkItemValidator()
	p := projectWithItems(t, 20, 0)

	err := v.ValidateWorkItemCreation(p, PriorityLow)
	require.ErrorIs(t, err, ErrDomainRule)
	require.Contains(t, err.Error(), "Project cannot have more than 20 work items")
}

func TestValidator_HighPriorityCap(t *testing.T) {
	v := NewWorkItemValidator()
	p := projectWithItems(t, 10, 5)

	err := v.ValidateWorkItemCreation(p, PriorityHigh)
	require.ErrorIs(t, err, ErrDomainRule)
	require.Contains(t, err.Error(), "Project cannot have more than 5 high priority work items")

	// The high cap never blocks lower priorities.
	require.NoError(t, v.ValidateWorkItemCreation(p, PriorityLow))
	require.NoError(t, v.ValidateWorkItemCreation(p, PriorityMedium))
}

func TestValidator_CountCapTakesPrecedence(t *testing.T) {
	v := NewWorkItemValidator()
	p := projectWithItems(t, 20, 6)

	err := v.ValidateWorkItemCreation(p, PriorityHigh)
	require.ErrorIs(t, err, ErrDomainRule)
	require.Contains(t, err.Error(), "Project cannot have more than 20 work items")
}
