package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWorkItem_ConstructionRecordsCreation(t *testing.T) {
	now := time.Now().UTC()
	creator := uuid.New()
	wi := NewWorkItem(uuid.New(), "task", "desc", now.AddDate(0, 1, 0),
		PriorityMedium, uuid.New(), creator, now)

	require.Equal(t, StatusPending, wi.Status)
	require.Len(t, wi.History, 1)
	require.Equal(t, "Work item created", wi.History[0].Action)
	require.Equal(t, creator, wi.History[0].ModifiedBy, "creation entry attributed to the creator")
}

func TestWorkItem_UpdateStatusNoOpOnSameStatus(t *testing.T) {
	now := time.Now().UTC()
	wi := NewWorkItem(uuid.New(), "task", "", now.AddDate(0, 1, 0),
		PriorityLow, uuid.New(), uuid.New(), now)

	h := wi.UpdateStatus(StatusPending, uuid.New(), now)
	require.Nil(t, h)
	require.Equal(t, StatusPending, wi.Status)
	require.Len(t, wi.History, 1, "no history entry for a same-status transition")
}

func TestWorkItem_UpdateStatusRecordsTransition(t *testing.T) {
	now := time.Now().UTC()
	modifier := uuid.New()
	wi := NewWorkItem(uuid.New(), "task", "", now.AddDate(0, 1, 0),
		PriorityLow, uuid.New(), uuid.New(), now)

	h := wi.UpdateStatus(StatusInProgress, modifier, now)
	require.NotNil(t, h)
	require.Equal(t, StatusInProgress, wi.Status)
	require.Equal(t, "Status changed to InProgress", h.Action)
	require.Equal(t, modifier, h.ModifiedBy)
	require.Len(t, wi.History, 2)

	// Arbitrary transitions are not forbidden, only suppressed when equal.
	back := wi.UpdateStatus(StatusPending, modifier, now)
	require.NotNil(t, back)
	require.Equal(t, "Status changed to Pending", back.Action)
}

func TestWorkItem_UpdateDetailsNoChanges(t *testing.T) {
	now := time.Now().UTC()
	due := now.AddDate(0, 1, 0)
	wi := NewWorkItem(uuid.New(), "task", "desc", due, PriorityLow, uuid.New(), uuid.New(), now)

	h := wi.UpdateDetails("task", "desc", due, uuid.New(), now)
	require.Nil(t, h)
	require.Len(t, wi.History, 1)
}

func TestWorkItem_UpdateDetailsCombinedEntry(t *testing.T) {
	now := time.Now().UTC()
	oldDue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newDue := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	wi := NewWorkItem(uuid.New(), "X", "old", oldDue, PriorityLow, uuid.New(), uuid.New(), now)

	h := wi.UpdateDetails("Y", "new", newDue, uuid.New(), now)
	require.NotNil(t, h)
	require.Equal(t,
		"Title changed from 'X' to 'Y', Description updated, Due date changed from 2024-01-01 to 2024-02-01",
		h.Action)
	require.Equal(t, "Y", wi.Title)
	require.Equal(t, "new", wi.Description)
	require.True(t, wi.DueDate.Equal(newDue))
	require.Len(t, wi.History, 2, "one combined entry for multiple field changes")
}

func TestWorkItem_UpdateDetailsPartialChange(t *testing.T) {
	now := time.Now().UTC()
	due := now.AddDate(0, 1, 0)
	wi := NewWorkItem(uuid.New(), "task", "desc", due, PriorityLow, uuid.New(), uuid.New(), now)

	h := wi.UpdateDetails("renamed", "desc", due, uuid.New(), now)
	require.NotNil(t, h)
	require.Equal(t, "Title changed from 'task' to 'renamed'", h.Action)
}

func TestWorkItem_AddComment(t *testing.T) {
	now := time.Now().UTC()
	author := uuid.New()
	wi := NewWorkItem(uuid.New(), "task", "", now.AddDate(0, 1, 0),
		PriorityLow, uuid.New(), uuid.New(), now)

	comment, history := wi.AddComment("needs clarification", author, now)

	require.Len(t, wi.Comments, 1)
	require.Len(t, wi.History, 2)
	require.Equal(t, wi.Comments[0].ID, comment.ID, "returned comment is the one appended")
	require.Equal(t, "needs clarification", comment.Content)
	require.Equal(t, author, comment.AuthorID)
	require.Equal(t, wi.ID, comment.WorkItemID)
	require.Equal(t, "Comment added: needs clarification", history.Action)
	require.Equal(t, author, history.ModifiedBy)
}

func TestWorkItemStatus_Valid(t *testing.T) {
	require.True(t, StatusPending.Valid())
	require.True(t, StatusInProgress.Valid())
	require.True(t, StatusCompleted.Valid())
	require.False(t, WorkItemStatus("Done").Valid())
}

func TestWorkItemPriority_Valid(t *testing.T) {
	require.True(t, PriorityLow.Valid())
	require.True(t, PriorityMedium.Valid())
	require.True(t, PriorityHigh.Valid())
	require.False(t, WorkItemPriority("Urgent").Valid())
}
