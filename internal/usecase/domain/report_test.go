package domain

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"task-management-service/internal/entities"
)

func reportItem(due time.Time, status entities.WorkItemStatus) entities.WorkItem {
	item := entities.NewWorkItem(uuid.New(), "task", "", due,
		entities.PriorityLow, uuid.New(), uuid.New(), due.AddDate(0, -1, 0))
	if status != entities.StatusPending {
		item.UpdateStatus(status, uuid.New(), due)
	}
	return *item
}

func reportUser(isManager bool) entities.User {
	return *entities.NewUser(uuid.New(), "user", "user@example.com", isManager, testNow)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUsecase_PerformanceReportAveragesOverManagers(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("AllWorkItems", mock.Anything).Return([]entities.WorkItem{
		reportItem(day(2023, time.March, 15), entities.StatusCompleted),
		reportItem(day(2023, time.June, 20), entities.StatusCompleted),
		reportItem(day(2023, time.September, 10), entities.StatusCompleted),
		reportItem(day(2023, time.July, 1), entities.StatusInProgress),
		reportItem(day(2022, time.December, 31), entities.StatusCompleted),
	}, nil)
	repo.On("AllUsers", mock.Anything).Return([]entities.User{
		reportUser(true), reportUser(true), reportUser(false), reportUser(false),
	}, nil)

	report, err := uc.PerformanceReport(context.Background(),
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.NoError(t, err)
	require.Equal(t, 3, report.TotalCompleted)
	require.InDelta(t, 1.5, report.AverageCompletedPerUser, 1e-9)
}

func TestUsecase_PerformanceReportZeroManagers(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("AllWorkItems", mock.Anything).Return([]entities.WorkItem{
		reportItem(day(2023, time.March, 15), entities.StatusCompleted),
	}, nil)
	repo.On("AllUsers", mock.Anything).Return([]entities.User{
		reportUser(false),
	}, nil)

	report, err := uc.PerformanceReport(context.Background(),
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalCompleted)
	require.Zero(t, report.AverageCompletedPerUser)
}

func TestUsecase_PerformanceReportEmptyCollections(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("AllWorkItems", mock.Anything).Return([]entities.WorkItem{}, nil)
	repo.On("AllUsers", mock.Anything).Return([]entities.User{}, nil)

	report, err := uc.PerformanceReport(context.Background(),
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.NoError(t, err)
	require.Zero(t, report.TotalCompleted)
	require.Zero(t, report.AverageCompletedPerUser)
}

func TestUsecase_PerformanceReportBoundsAreInclusive(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	boundary := day(2023, time.May, 10)
	repo.On("AllWorkItems", mock.Anything).Return([]entities.WorkItem{
		reportItem(boundary, entities.StatusCompleted),
	}, nil)
	repo.On("AllUsers", mock.Anything).Return([]entities.User{reportUser(true)}, nil)

	report, err := uc.PerformanceReport(context.Background(), boundary, boundary)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalCompleted, "fromDate == toDate still counts that day")
}

func TestUsecase_PerformanceReportForRequiresManager(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	requester := reportUser(false)
	repo.On("GetUser", mock.Anything, requester.ID).Return(&requester, nil)

	_, err := uc.PerformanceReportFor(context.Background(), requester.ID,
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	repo.AssertNotCalled(t, "AllWorkItems", mock.Anything)
}

func TestUsecase_PerformanceReportForUnknownRequester(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	requesterID := uuid.New()
	repo.On("GetUser", mock.Anything, requesterID).Return(nil, entities.ErrUserNotFound)

	_, err := uc.PerformanceReportFor(context.Background(), requesterID,
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_PerformanceReportForNilRequester(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.PerformanceReportFor(context.Background(), uuid.Nil,
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUsecase_PerformanceReportForManagerSucceeds(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	requester := reportUser(true)
	repo.On("GetUser", mock.Anything, requester.ID).Return(&requester, nil)
	repo.On("AllWorkItems", mock.Anything).Return([]entities.WorkItem{}, nil)
	repo.On("AllUsers", mock.Anything).Return([]entities.User{requester}, nil)

	report, err := uc.PerformanceReportFor(context.Background(), requester.ID,
		day(2023, time.January, 1), day(2023, time.December, 31))
	require.NoError(t, err)
	require.Equal(t, day(2023, time.January, 1), report.FromDate)
	repo.AssertExpectations(t)
}
