package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Purge(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// Purge implements AttendanceHandler. Admin-only bulk delete of every
// record; not part of the normal business flow.
func (h *attendanceHandlerImpl) Purge(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.attendanceService.PurgeAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%d attendance records deleted", deleted), map[string]int64{
		"eliminados": deleted,
	})
}
