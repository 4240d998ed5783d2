package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"
)

const (
	// TTL is how long an issued code stays usable.
	TTL = 30 * time.Minute
	// MaxAttempts caps delivery-verification guesses per order.
	MaxAttempts = 10

	codeMin = 100000
	codeMax = 999999
)

var ErrEmptySecret = errors.New("otp secret must not be empty")

// Outcome of a verification call. Only OutcomeValid authorizes delivery.
type Outcome string

const (
	OutcomeValid           Outcome = "VALID"
	OutcomeAlreadyUsed     Outcome = "ALREADY_USED"
	OutcomeExpired         Outcome = "EXPIRED"
	OutcomeTooManyAttempts Outcome = "TOO_MANY_ATTEMPTS"
	OutcomeInvalid         Outcome = "INVALID"
)

type Clock interface {
	Now() time.Time
}

// Issuer generates and verifies delivery codes with an injected secret and
// clock, so tests run deterministically.
type Issuer struct {
	secret []byte
	clock  Clock
}

func NewIssuer(secret []byte, clock Clock) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Issuer{secret: secret, clock: clock}, nil
}

// Issue draws a uniform 6-digit code from crypto/rand and returns it with
// its keyed hash and expiry. The caller persists hash and expiry, shows the
// plaintext once and never stores it.
func (i *Issuer) Issue() (code string, hash string, expiresAt time.Time, err error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", "", time.Time{}, err
	}
	code = fmt.Sprintf("%06d", n.Int64()+codeMin)
	return code, i.Hash(code), i.clock.Now().Add(TTL), nil
}

// Hash is HMAC-SHA256 over the code, hex encoded. Never reversible.
func (i *Issuer) Hash(code string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify evaluates a provided code against the stored credential state.
// First match wins: used, expired, attempt cap, then the hash comparison.
// On OutcomeInvalid the caller must persist attempts+1; on OutcomeValid the
// caller marks usedAt. State must be freshly loaded, never cached.
func (i *Issuer) Verify(code string, storedHash string, expiresAt time.Time, usedAt *time.Time, attempts int) Outcome {
	if usedAt != nil {
		return OutcomeAlreadyUsed
	}
	if i.clock.Now().After(expiresAt) {
		return OutcomeExpired
	}
	if attempts >= MaxAttempts {
		return OutcomeTooManyAttempts
	}
	// hmac.Equal is constant-time.
	if !hmac.Equal([]byte(i.Hash(code)), []byte(storedHash)) {
		return OutcomeInvalid
	}
	return OutcomeValid
}
