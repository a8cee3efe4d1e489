package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func validDays() []DayDetailRequest {
	days := make([]DayDetailRequest, 0, 7)
	for w := 1; w <= 7; w++ {
		day := DayDetailRequest{Weekday: w, IsWorkingDay: w <= 5}
		if day.IsWorkingDay {
			day.EntryTime = strPtr("08:00")
			day.ExitTime = strPtr("17:00")
			day.LunchStart = strPtr("12:00")
			day.LunchEnd = strPtr("13:00")
		}
		days = append(days, day)
	}
	return days
}

func TestCreateShiftRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		req := CreateShiftRequest{Name: "morning", Days: validDays()}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing weekday detail", func(t *testing.T) {
		req := CreateShiftRequest{Name: "morning", Days: validDays()[:6]}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing detail for sunday")
	})

	t.Run("duplicate weekday detail", func(t *testing.T) {
		days := validDays()
		days[6].Weekday = 1
		req := CreateShiftRequest{Name: "morning", Days: days}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate detail for monday")
	})

	t.Run("weekday out of range", func(t *testing.T) {
		days := validDays()
		days[0].Weekday = 8
		req := CreateShiftRequest{Name: "morning", Days: days}
		assert.Error(t, req.Validate())
	})

	t.Run("working day without times", func(t *testing.T) {
		days := validDays()
		days[0].EntryTime = nil
		req := CreateShiftRequest{Name: "morning", Days: days}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "require horaEntrada")
	})

	t.Run("exit not after entry", func(t *testing.T) {
		days := validDays()
		days[0].ExitTime = strPtr("08:00")
		days[0].LunchStart = nil
		days[0].LunchEnd = nil
		req := CreateShiftRequest{Name: "morning", Days: days}
		assert.Error(t, req.Validate())
	})

	t.Run("lunch outside working hours", func(t *testing.T) {
		days := validDays()
		days[0].LunchStart = strPtr("07:00")
		req := CreateShiftRequest{Name: "morning", Days: days}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lunch window")
	})

	t.Run("half a lunch window", func(t *testing.T) {
		days := validDays()
		days[0].LunchEnd = nil
		req := CreateShiftRequest{Name: "morning", Days: days}
		assert.Error(t, req.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		req := CreateShiftRequest{Name: "  ", Days: validDays()}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "nombre", verrs[0].Field)
	})

	t.Run("rest days need no times", func(t *testing.T) {
		days := validDays()
		days[5].IsWorkingDay = false // Saturday already off; make Friday off too
		days[4] = DayDetailRequest{Weekday: 5}
		req := CreateShiftRequest{Name: "short week", Days: days}
		assert.NoError(t, req.Validate())
	})
}

func TestSetStatusRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := SetStatusRequest{Status: "inactive"}
	assert.NoError(t, valid.Validate())

	invalid := SetStatusRequest{Status: "archived"}
	assert.Error(t, invalid.Validate())
}
