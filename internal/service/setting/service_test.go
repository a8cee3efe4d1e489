package setting

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
)

type fakeSettingRepo struct {
	values map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (f *fakeSettingRepo) Get(_ context.Context, key string) (setting.Setting, error) {
	value, ok := f.values[key]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return setting.Setting{Key: key, Value: value}, nil
}

func (f *fakeSettingRepo) GetBool(_ context.Context, key string, fallback bool) (bool, error) {
	value, ok := f.values[key]
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, nil
	}
	return parsed, nil
}

func (f *fakeSettingRepo) Set(_ context.Context, key string, value string) (setting.Setting, error) {
	f.values[key] = value
	return setting.Setting{Key: key, Value: value}, nil
}

func TestSettingService_DefaultsToStrictMode(t *testing.T) {
	svc := NewSettingService(newFakeSettingRepo())

	settings, err := svc.GetAttendanceSettings(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.AllowMultipleAttendance)
}

func TestSettingService_UpdateRoundTrips(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateAttendanceSettings(ctx, AttendanceSettings{AllowMultipleAttendance: true})
	require.NoError(t, err)
	assert.True(t, updated.AllowMultipleAttendance)
	assert.Equal(t, "true", repo.values[setting.KeyAllowMultipleAttendance])

	settings, err := svc.GetAttendanceSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.AllowMultipleAttendance)
}
