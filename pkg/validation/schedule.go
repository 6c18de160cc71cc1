package validation

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// ValidateSchedule checks that a cron schedule expression parses with the
// standard five-field syntax (descriptors such as @hourly included).
func ValidateSchedule(spec string) error {
	if spec == "" {
		return fmt.Errorf("schedule must not be empty")
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}
