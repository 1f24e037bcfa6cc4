package render

import "fmt"

// ConfigurationError reports an attachment configuration the device cannot
// render to: a missing slot-0 surface, a size or format mismatch between
// colour slots, or a framebuffer the device reports as incomplete.
//
// Configuration errors are fatal to the operation that produced them; the
// target stays not-render-ready until the configuration is corrected and
// revalidated.
type ConfigurationError struct {
	// Slot is the colour slot at fault, or -1 when no single slot is
	// implicated (completeness failures).
	Slot int

	Msg string
}

func (e *ConfigurationError) Error() string {
	if e.Slot >= 0 {
		return fmt.Sprintf("render: attachment %d: %s", e.Slot, e.Msg)
	}
	return "render: " + e.Msg
}

func configErrorf(slot int, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Slot: slot, Msg: fmt.Sprintf(format, args...)}
}
