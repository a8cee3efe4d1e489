package attendance

import (
	"time"
)

// Record is one check-in event. Records are immutable once written; the
// recorder is the only writer and the bulk purge is the only delete path.
type Record struct {
	ID         string
	EmployeeID string
	Type       RecordType
	Date       time.Time // calendar day
	Time       time.Time // time-of-day
	Method     CaptureMethod
	Late       bool // meaningful for entry records only
	CreatedAt  time.Time

	// Joined for listings
	EmployeeName   *string
	EmployeeCedula *string
}

type RecordType string

const (
	TypeEntry RecordType = "entry"
	TypeExit  RecordType = "exit"
)

var RecordTypeValues = []string{
	string(TypeEntry),
	string(TypeExit),
}

type CaptureMethod string

const (
	MethodManual    CaptureMethod = "manual"
	MethodQR        CaptureMethod = "qr"
	MethodBiometric CaptureMethod = "biometric"
)

var CaptureMethodValues = []string{
	string(MethodManual),
	string(MethodQR),
	string(MethodBiometric),
}
