package report

import (
	"context"
	"time"
)

// ReportService derives time-accounting facts from the persisted check-in
// stream. Every method is a pure read: re-running it over the same data
// yields identical output.
type ReportService interface {
	// Daily returns one row per active employee for a date, including
	// employees with no records (reported as absent).
	Daily(ctx context.Context, date time.Time) ([]DailyRow, error)

	// Lateness lists every late entry in the range plus per-employee
	// counts and averages.
	Lateness(ctx context.Context, start, end time.Time) (LatenessReport, error)

	// Journeys pairs entries with exits per employee and day across the
	// range and computes worked and overtime minutes.
	Journeys(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Journey, error)

	// Report totals journeys per employee over the range.
	Report(ctx context.Context, start, end time.Time) ([]RangeSummary, error)
}
