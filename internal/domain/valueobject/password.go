package valueobject

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/fitlife/fitlife-api/internal/domain/core"
)

// bcrypt work factor for new digests
const hashCost = 10

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

// Password holds either a plaintext candidate or a bcrypt digest, tagged by
// the hashed flag. Only hashed passwords are ever persisted or compared
// against. Construct via NewPassword.
type Password struct {
	value  string
	hashed bool
}

// NewPassword validates a raw password. Already-hashed values skip the
// strength checks. The check order (length, letters, numbers) is load-bearing:
// callers surface only the first failure.
func NewPassword(raw string, hashed bool) core.Result[Password] {
	if raw == "" {
		return core.Fail[Password]("Password is required")
	}

	if !hashed {
		if utf8.RuneCountInString(raw) < 8 {
			return core.Fail[Password]("Password must be at least 8 characters")
		}
		if !hasLetter.MatchString(raw) {
			return core.Fail[Password]("Password must contain letters")
		}
		if !hasDigit.MatchString(raw) {
			return core.Fail[Password]("Password must contain numbers")
		}
	}

	return core.Ok(Password{value: raw, hashed: hashed})
}

// Hash returns the bcrypt digest of the password. Hashed values are returned
// unchanged, so double-hashing cannot happen.
func (p Password) Hash() (string, error) {
	if p.hashed {
		return p.value, nil
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(p.value), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare verifies a plaintext candidate against the stored digest. A
// plaintext password is never a valid comparison target.
func (p Password) Compare(plain string) bool {
	if !p.hashed {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.value), []byte(plain)) == nil
}

func (p Password) Value() string {
	return p.value
}

func (p Password) Hashed() bool {
	return p.hashed
}
