package attendance

import (
	"context"
)

// AttendanceService is the transactional write path for check-ins.
type AttendanceService interface {
	// Record validates and persists one check-in: employee lookup by
	// cedula, classification against today's records, lateness annotation
	// for entries, one insert, one record-created event.
	Record(ctx context.Context, req RecordRequest) (RecordResult, error)

	// PurgeAll deletes every attendance record. Privileged, administrative.
	PurgeAll(ctx context.Context) (int64, error)
}
