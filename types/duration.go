package types

import (
	"strconv"
	"time"
)

// Duration is an extension of time.Duration that marshals as the string form
// produced by time.Duration.String(), so configuration sources can say "5m"
// instead of a nanosecond count.
type Duration time.Duration

// String delegates to time.Duration.String()
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText produces the form accepted by time.ParseDuration()
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the forms accepted by time.ParseDuration()
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

// MarshalJSON produces a quoted duration string
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON permits either (1) quoted strings of the form accepted by
// time.ParseDuration(), or (2) bare numeric values, which are assumed to be
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		return d.UnmarshalText(data[1 : len(data)-1])
	}

	nanos, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}

	*d = Duration(nanos)
	return nil
}
