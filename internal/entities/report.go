// Package entities contains core business entities.
package entities

import "time"

// PerformanceReport aggregates completed work over a date window.
type PerformanceReport struct {
	TotalCompleted          int       `json:"total_completed"`
	AverageCompletedPerUser float64   `json:"average_completed_per_user"`
	FromDate                time.Time `json:"from_date"`
	ToDate                  time.Time `json:"to_date"`
}
