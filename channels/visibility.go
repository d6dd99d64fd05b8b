package channels

import (
	"fmt"
	"strings"
)

// Visibility decides who may read a channel's value.
type Visibility int

const (
	// Public channels are readable; writes to them also reach the main channel.
	Public Visibility = iota
	// Private channels are readable but capture their writes exclusively.
	Private
	// Internal channels are never exposed to callers outside the session.
	Internal
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "Public"
	case Private:
		return "Private"
	case Internal:
		return "Internal"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

func ParseVisibility(str string) (Visibility, error) {
	switch strings.ToLower(str) {
	case "public", "":
		return Public, nil
	case "private":
		return Private, nil
	case "internal":
		return Internal, nil
	}
	return 0, fmt.Errorf("unknown visibility: %s", str)
}
