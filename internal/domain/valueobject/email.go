package valueobject

import (
	"regexp"
	"strings"

	"github.com/fitlife/fitlife-api/internal/domain/core"
)

// local-part@domain.tld, no whitespace, at least one dot after the @
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, normalized email address. Construct via NewEmail.
type Email struct {
	value string
}

// NewEmail validates and normalizes a raw address (trimmed, lowercased).
func NewEmail(raw string) core.Result[Email] {
	if raw == "" {
		return core.Fail[Email]("Email is required")
	}

	normalized := strings.TrimSpace(strings.ToLower(raw))
	if !emailPattern.MatchString(normalized) {
		return core.Fail[Email]("Invalid email format")
	}

	return core.Ok(Email{value: normalized})
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
