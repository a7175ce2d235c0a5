package hours

import (
	"fmt"

	"github.com/pkg/errors"
)

// MalformedError reports a descriptor that is neither "Closed" nor a valid range.
type MalformedError struct {
	Value  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed hours %q: %s", e.Value, e.Reason)
}

func malformed(value, reason string) error {
	return &MalformedError{Value: value, Reason: reason}
}

// withValue reports a clock error against the whole descriptor it came from.
func withValue(err error, value string) error {
	var me *MalformedError
	if errors.As(err, &me) {
		return &MalformedError{Value: value, Reason: me.Reason}
	}

	return err
}

// IsMalformed reports whether err is a MalformedError.
func IsMalformed(err error) bool {
	var me *MalformedError

	return errors.As(err, &me)
}
