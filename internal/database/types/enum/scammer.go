package enum

import "fmt"

// ScammerStatus represents the moderation state of a scam report.
type ScammerStatus int

const (
	// ScammerStatusPending marks a freshly submitted report awaiting review.
	ScammerStatusPending ScammerStatus = iota
	// ScammerStatusVerified marks a report confirmed by a moderator.
	ScammerStatusVerified
	// ScammerStatusRejected marks a report dismissed by a moderator.
	ScammerStatusRejected
)

var scammerStatusNames = map[ScammerStatus]string{
	ScammerStatusPending:  "pending",
	ScammerStatusVerified: "verified",
	ScammerStatusRejected: "rejected",
}

// String returns the lowercase name of the status.
func (s ScammerStatus) String() string {
	if name, ok := scammerStatusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("ScammerStatus(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s ScammerStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ScammerStatus) UnmarshalText(text []byte) error {
	for status, name := range scammerStatusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown scammer status %q", text)
}

// ScammerStatusString parses a status name into its enum value.
func ScammerStatusString(name string) (ScammerStatus, error) {
	var s ScammerStatus
	if err := s.UnmarshalText([]byte(name)); err != nil {
		return 0, err
	}

	return s, nil
}
