package report

import (
	"github.com/shopspring/decimal"
)

// DailyRow is one employee's line on the daily attendance board.
type DailyRow struct {
	EmployeeName string  `json:"empleado"`
	Cedula       string  `json:"cedula"`
	EntryTime    *string `json:"horaEntrada"`
	ExitTime     *string `json:"horaSalida"`
	Method       *string `json:"metodo"`
	Late         bool    `json:"esTardanza"`
	MinutesLate  int     `json:"tardanza"`
	Status       string  `json:"estado"` // completo | en_jornada | no_asistio
}

const (
	DayStatusComplete  = "completo"
	DayStatusInJourney = "en_jornada"
	DayStatusAbsent    = "no_asistio"
)

// LatenessDetail is one late entry inside the requested range.
type LatenessDetail struct {
	EmployeeName  string `json:"empleado"`
	Cedula        string `json:"cedula"`
	Date          string `json:"fecha"`
	EntryTime     string `json:"horaEntrada"`
	ScheduledTime string `json:"horaProgramada"`
	MinutesLate   int    `json:"minutosTarde"`
}

// LatenessSummary aggregates one employee's lateness over the range.
type LatenessSummary struct {
	EmployeeName   string          `json:"empleado"`
	Cedula         string          `json:"cedula"`
	TotalLate      int             `json:"totalTardanzas"`
	AverageMinutes decimal.Decimal `json:"promedioMinutos"`
}

type LatenessReport struct {
	Detail  []LatenessDetail  `json:"detalle"`
	Summary []LatenessSummary `json:"resumen"`
}

// Journey is one employee/day pairing of an entry with its exit, with the
// derived time-accounting figures. Journeys are recomputed on every request
// and never persisted.
type Journey struct {
	EmployeeName    string          `json:"empleado"`
	Cedula          string          `json:"cedula"`
	Date            string          `json:"fecha"`
	EntryTime       *string         `json:"horaEntrada"`
	ExitTime        *string         `json:"horaSalida"`
	WorkedMinutes   int             `json:"minutosTrabajados"`
	WorkedHours     decimal.Decimal `json:"horasTrabajadas"`
	OvertimeMinutes int             `json:"minutosExtra"`
	OvertimeHours   decimal.Decimal `json:"horasExtra"`
	Attended        bool            `json:"asistio"`
	Inconsistent    bool            `json:"inconsistente"`
}

// RangeSummary totals one employee's journeys over a date range.
type RangeSummary struct {
	EmployeeName    string          `json:"empleado"`
	Cedula          string          `json:"cedula"`
	DaysWorked      int             `json:"diasTrabajados"`
	DaysAbsent      int             `json:"diasNoAsistidos"`
	WorkedMinutes   int             `json:"minutosTrabajados"`
	WorkedHours     decimal.Decimal `json:"horasTrabajadas"`
	OvertimeMinutes int             `json:"minutosExtra"`
	OvertimeHours   decimal.Decimal `json:"horasExtra"`
}
