// Package domain contains application services orchestrating domain logic by reporting.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-management-service/internal/entities"
)

// PerformanceReport computes completed-work aggregates over a date window.
// It is a pure read-side fold: completed items with a due date inside
// [fromDate, toDate] (inclusive on both bounds) are counted, and the average
// is taken against the manager cohort. No managers means a zero average.
func (u *Usecase) PerformanceReport(ctx context.Context, fromDate, toDate time.Time) (*entities.PerformanceReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	items, err := u.repo.AllWorkItems(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.repo.AllUsers(ctx)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, wi := range items {
		if wi.Status != entities.StatusCompleted {
			continue
		}
		if wi.DueDate.Before(fromDate) || wi.DueDate.After(toDate) {
			continue
		}
		completed++
	}

	managers := 0
	for _, usr := range users {
		if usr.IsManager {
			managers++
		}
	}

	average := 0.0
	if managers > 0 {
		average = float64(completed) / float64(managers)
	}

	return &entities.PerformanceReport{
		TotalCompleted:          completed,
		AverageCompletedPerUser: average,
		FromDate:                fromDate,
		ToDate:                  toDate,
	}, nil
}

// PerformanceReportFor is the authorization-gated report entry point: the
// requester must exist and be a manager. The aggregation underneath is
// identical to PerformanceReport.
func (u *Usecase) PerformanceReportFor(ctx context.Context, requesterID uuid.UUID, fromDate, toDate time.Time) (*entities.PerformanceReport, error) {
	if requesterID == uuid.Nil {
		return nil, fmt.Errorf("%w: requester id is required", entities.ErrInvalidArgument)
	}

	checkCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	requester, err := u.repo.GetUser(checkCtx, requesterID)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return nil, err
	}
	if err != nil || !requester.IsManager {
		u.log.Infow("report access denied", "requester_id", requesterID)
		return nil, fmt.Errorf("%w: Only managers can access performance reports", entities.ErrUnauthorized)
	}

	return u.PerformanceReport(ctx, fromDate, toDate)
}
