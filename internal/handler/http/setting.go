package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistpro/attendance-backend-go/internal/handler/http/response"
	settingService "github.com/asistpro/attendance-backend-go/internal/service/setting"
)

type SettingHandler interface {
	GetAttendanceSettings(w http.ResponseWriter, r *http.Request)
	UpdateAttendanceSettings(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService settingService.SettingService
}

func NewSettingHandler(svc settingService.SettingService) SettingHandler {
	return &settingHandlerImpl{
		settingService: svc,
	}
}

// GetAttendanceSettings implements SettingHandler.
func (h *settingHandlerImpl) GetAttendanceSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetAttendanceSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateAttendanceSettings implements SettingHandler.
func (h *settingHandlerImpl) UpdateAttendanceSettings(w http.ResponseWriter, r *http.Request) {
	var req settingService.AttendanceSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.UpdateAttendanceSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}
