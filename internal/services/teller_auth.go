package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const (
	// BCryptCost is used when no cost is configured
	BCryptCost = 12

	MaxPINLength = 72 // bcrypt input limit
)

var (
	ErrPINEmpty          = errors.New("PIN cannot be empty")
	ErrPINTooLong        = fmt.Errorf("PIN must not exceed %d characters", MaxPINLength)
	ErrTellerPINMismatch = errors.New("incorrect teller PIN")
	ErrTellerLocked      = errors.New("teller access is temporarily locked")
)

// TellerAuth checks the teller PIN before Customer Management. Failed
// attempts draw from a token bucket of maxFailures tokens that refills one
// token per lockout window; an empty bucket locks the teller out.
type TellerAuth struct {
	hash         []byte
	maxFailures  int
	window       time.Duration
	auditService AuditServiceInterface
	logger       ActivityLoggerInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time

	mu       sync.Mutex
	failures *rate.Limiter
}

// NewTellerAuth creates the PIN check. An empty hash disables it.
func NewTellerAuth(
	pinHash string,
	maxFailures int,
	window time.Duration,
	auditService AuditServiceInterface,
	logger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) *TellerAuth {
	if maxFailures <= 0 {
		maxFailures = 1
	}
	ta := &TellerAuth{
		hash:         []byte(pinHash),
		maxFailures:  maxFailures,
		window:       window,
		auditService: auditService,
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
	}
	ta.failures = ta.newLimiter()
	return ta
}

func (ta *TellerAuth) newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(ta.window), ta.maxFailures)
}

// Enabled reports whether a teller PIN has been configured
func (ta *TellerAuth) Enabled() bool {
	return len(ta.hash) > 0
}

// Authenticate compares pin against the configured hash
func (ta *TellerAuth) Authenticate(ctx context.Context, pin string) error {
	if !ta.Enabled() {
		return nil
	}

	ta.mu.Lock()
	defer ta.mu.Unlock()

	now := ta.now()
	if ta.failures.TokensAt(now) < 1 {
		ta.metrics.IncrementCounter("teller_auth", map[string]string{"event_type": "locked"})
		ta.logger.LogTellerAuth(ctx, false, 0)
		return ErrTellerLocked
	}

	// bcrypt.CompareHashAndPassword is constant time in the PIN
	if err := bcrypt.CompareHashAndPassword(ta.hash, []byte(pin)); err != nil {
		ta.failures.AllowN(now, 1)
		remaining := int(ta.failures.TokensAt(now))
		ta.auditService.LogTellerLogin(ctx, false)
		ta.logger.LogTellerAuth(ctx, false, remaining)
		ta.metrics.IncrementCounter("teller_auth", map[string]string{"event_type": "failed"})
		if remaining < 1 {
			return ErrTellerLocked
		}
		return ErrTellerPINMismatch
	}

	ta.failures = ta.newLimiter()
	ta.auditService.LogTellerLogin(ctx, true)
	ta.logger.LogTellerAuth(ctx, true, ta.maxFailures)
	ta.metrics.IncrementCounter("teller_auth", map[string]string{"event_type": "success"})
	return nil
}

// HashPIN hashes a teller PIN for TELLER_PIN_HASH
func HashPIN(pin string, cost int) (string, error) {
	if pin == "" {
		return "", ErrPINEmpty
	}
	if len(pin) > MaxPINLength {
		return "", ErrPINTooLong
	}
	if cost == 0 {
		cost = BCryptCost
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}

	return string(hashedBytes), nil
}
