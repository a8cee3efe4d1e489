package setting

import (
	"context"
	"errors"
	"strconv"

	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
)

// AttendanceSettings is the wire shape of the engine's global toggles.
type AttendanceSettings struct {
	AllowMultipleAttendance bool `json:"permitirMultiplesMarcaciones"`
}

// SettingService exposes the administrative view of the global settings.
type SettingService interface {
	GetAttendanceSettings(ctx context.Context) (AttendanceSettings, error)
	UpdateAttendanceSettings(ctx context.Context, req AttendanceSettings) (AttendanceSettings, error)
}

type SettingServiceImpl struct {
	setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) SettingService {
	return &SettingServiceImpl{SettingRepository: settingRepo}
}

// GetAttendanceSettings implements SettingService.
func (s *SettingServiceImpl) GetAttendanceSettings(ctx context.Context) (AttendanceSettings, error) {
	allowMultiple, err := s.SettingRepository.GetBool(ctx, setting.KeyAllowMultipleAttendance, false)
	if err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
		return AttendanceSettings{}, err
	}

	return AttendanceSettings{AllowMultipleAttendance: allowMultiple}, nil
}

// UpdateAttendanceSettings implements SettingService.
func (s *SettingServiceImpl) UpdateAttendanceSettings(ctx context.Context, req AttendanceSettings) (AttendanceSettings, error) {
	_, err := s.SettingRepository.Set(ctx, setting.KeyAllowMultipleAttendance, strconv.FormatBool(req.AllowMultipleAttendance))
	if err != nil {
		return AttendanceSettings{}, err
	}

	return req, nil
}
