package setting

import (
	"context"
)

// SettingRepository stores the process-wide configuration rows. The cycle
// mode flag is read through GetBool on every classification so an
// administrative change takes effect on the next check-in.
type SettingRepository interface {
	Get(ctx context.Context, key string) (Setting, error)

	// GetBool returns the boolean value of a key, or fallback when the row
	// does not exist yet.
	GetBool(ctx context.Context, key string, fallback bool) (bool, error)

	// Set upserts a key. Mutation happens only through the administrative
	// settings endpoint.
	Set(ctx context.Context, key string, value string) (Setting, error)
}
