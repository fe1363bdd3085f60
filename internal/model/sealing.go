package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SealingKind enumerates the development sealing policies.
type SealingKind string

var (
	// SealingInstant seals a block whenever the pool validates a transaction.
	SealingInstant SealingKind = "instant"
	// SealingManual seals blocks on operator request.
	SealingManual SealingKind = "manual"
	// SealingInterval seals (possibly empty) blocks on a fixed period.
	SealingInterval SealingKind = "interval"
)

// Sealing is the configured development sealing policy.
type Sealing struct {
	Kind     SealingKind
	Interval time.Duration
}

// ParseSealing parses "instant", "manual" or a millisecond interval such as "6000".
func ParseSealing(value string) (Sealing, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case string(SealingInstant):
		return Sealing{Kind: SealingInstant}, nil
	case string(SealingManual):
		return Sealing{Kind: SealingManual}, nil
	default:
		millis, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Sealing{}, fmt.Errorf("unknown sealing mode %q", value)
		}
		if millis == 0 {
			return Sealing{}, fmt.Errorf("sealing interval must be positive")
		}
		return Sealing{Kind: SealingInterval, Interval: time.Duration(millis) * time.Millisecond}, nil
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (s *Sealing) UnmarshalFlag(value string) error {
	parsed, err := ParseSealing(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalFlag implements flags.Marshaler.
func (s Sealing) MarshalFlag() (string, error) {
	return s.String(), nil
}

func (s Sealing) String() string {
	if s.Kind == SealingInterval {
		return strconv.FormatInt(s.Interval.Milliseconds(), 10)
	}
	return string(s.Kind)
}
