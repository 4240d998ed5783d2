package otp

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newTestIssuer(t *testing.T, clock Clock) *Issuer {
	t.Helper()
	issuer, err := NewIssuer([]byte("test-otp-secret"), clock)
	assert.NoError(t, err)
	return issuer
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := NewIssuer(nil, &fixedClock{})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssue_CodeShape(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestIssuer(t, clock)

	// codes are always six digits in [100000, 999999]
	for i := 0; i < 200; i++ {
		code, hash, expiresAt, err := issuer.Issue()
		assert.NoError(t, err)
		assert.Len(t, code, 6)

		n, convErr := strconv.Atoi(code)
		assert.NoError(t, convErr)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)

		assert.Equal(t, issuer.Hash(code), hash)
		assert.Equal(t, clock.now.Add(TTL), expiresAt)
	}
}

func TestHash_Deterministic(t *testing.T) {
	issuer := newTestIssuer(t, &fixedClock{})

	assert.Equal(t, issuer.Hash("123456"), issuer.Hash("123456"))
	assert.NotEqual(t, issuer.Hash("123456"), issuer.Hash("123457"))

	// a different secret yields a different hash for the same code
	other, err := NewIssuer([]byte("other-secret"), &fixedClock{})
	assert.NoError(t, err)
	assert.NotEqual(t, issuer.Hash("123456"), other.Hash("123456"))
}

func TestVerify_Valid(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestIssuer(t, clock)

	hash := issuer.Hash("654321")
	expiresAt := clock.now.Add(TTL)

	assert.Equal(t, OutcomeValid, issuer.Verify("654321", hash, expiresAt, nil, 0))
	assert.Equal(t, OutcomeValid, issuer.Verify("654321", hash, expiresAt, nil, MaxAttempts-1))
	assert.Equal(t, OutcomeInvalid, issuer.Verify("654322", hash, expiresAt, nil, 0))
}

// The stored state is checked in a fixed order: used, then expired, then the
// attempt cap, then the hash. An earlier condition masks all later ones.
func TestVerify_OutcomePrecedence(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestIssuer(t, clock)

	hash := issuer.Hash("654321")
	expired := clock.now.Add(-time.Minute)
	live := clock.now.Add(TTL)
	used := clock.now.Add(-2 * time.Minute)

	// used beats expired, the cap and a correct code
	assert.Equal(t, OutcomeAlreadyUsed, issuer.Verify("654321", hash, expired, &used, MaxAttempts))

	// expired beats the cap and a correct code
	assert.Equal(t, OutcomeExpired, issuer.Verify("654321", hash, expired, nil, MaxAttempts))

	// the cap beats a correct code
	assert.Equal(t, OutcomeTooManyAttempts, issuer.Verify("654321", hash, live, nil, MaxAttempts))
}

func TestVerify_AttemptCapBoundary(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestIssuer(t, clock)

	hash := issuer.Hash("654321")
	live := clock.now.Add(TTL)

	// attempts 0..9 still evaluate the code
	for attempts := 0; attempts < MaxAttempts; attempts++ {
		assert.Equal(t, OutcomeInvalid, issuer.Verify("000000", hash, live, nil, attempts),
			"attempts=%d", attempts)
	}

	// at the cap even the right code no longer works
	assert.Equal(t, OutcomeTooManyAttempts, issuer.Verify("654321", hash, live, nil, MaxAttempts))
	assert.Equal(t, OutcomeTooManyAttempts, issuer.Verify("654321", hash, live, nil, MaxAttempts+1))
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestIssuer(t, clock)

	hash := issuer.Hash("654321")

	// exactly at the expiry instant the code is still usable
	assert.Equal(t, OutcomeValid, issuer.Verify("654321", hash, clock.now, nil, 0))

	// one tick later it is gone
	clock.now = clock.now.Add(time.Nanosecond)
	assert.Equal(t, OutcomeExpired, issuer.Verify("654321", hash, clock.now.Add(-time.Nanosecond), nil, 0))
}

// Replay after a successful delivery is reported as ALREADY_USED.
func TestVerify_Replay(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestIssuer(t, clock)

	hash := issuer.Hash("654321")
	live := clock.now.Add(TTL)

	assert.Equal(t, OutcomeValid, issuer.Verify("654321", hash, live, nil, 3))

	usedAt := clock.now
	assert.Equal(t, OutcomeAlreadyUsed, issuer.Verify("654321", hash, live, &usedAt, 4))
}
