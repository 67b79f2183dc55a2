package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a time.Duration that travels through JSON as a string in the
// form accepted by time.ParseDuration, e.g. "15s" or "2m30s". Poll policies
// carry their interval as a Duration so they stay readable in JSON config.
type Duration struct {
	time.Duration
}

// NewDuration wraps d.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (d Duration) String() string {
	return d.Duration.String()
}

// MarshalJSON renders the duration as a string, not nanoseconds.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts only the string form; a bare number is rejected
// rather than guessed at as a unit.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("invalid duration type: %T", v)
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed

	return nil
}
