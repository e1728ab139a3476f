package portid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidAddress is returned for any malformed port address.
var ErrInvalidAddress = errors.New("invalid port address")

var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidName reports whether s can be used as a node or port name.
func ValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// Parse creates a Port by parsing its canonical string representation.
func Parse(raw string) (Port, error) {
	if raw == "" {
		return Port{}, fmt.Errorf("%w: address cannot be empty", ErrInvalidAddress)
	}

	parts := strings.Split(raw, ".")
	if len(parts) > 2 {
		return Port{}, fmt.Errorf("%w: %q has more than one '.' separator", ErrInvalidAddress, raw)
	}
	for _, part := range parts {
		if part == "" {
			return Port{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidAddress, raw)
		}
		if !ValidName(part) {
			return Port{}, fmt.Errorf("%w: invalid segment %q in %q", ErrInvalidAddress, part, raw)
		}
	}

	if len(parts) == 1 {
		return NodeOnly(parts[0]), nil
	}
	return New(parts[0], parts[1]), nil
}

// MustParse is like Parse but panics on error. Intended for literals in code and tests.
func MustParse(raw string) Port {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
