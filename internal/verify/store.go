package verify

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors for code checks.
var (
	// ErrNoCode means no active code exists for the address, either
	// because none was requested or because it expired.
	ErrNoCode = errors.New("verify: no active code")
	// ErrCodeMismatch means the submitted code is wrong but attempts
	// remain.
	ErrCodeMismatch = errors.New("verify: code mismatch")
	// ErrLockedOut means the attempt budget is exhausted; the code has
	// been invalidated and a new one must be requested.
	ErrLockedOut = errors.New("verify: too many attempts")
)

// Store keeps one-time verification codes in Redis. Codes are stored
// bcrypt-hashed; only the attempt counter and TTL live alongside.
type Store struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

// NewStore constructs a Store.
func NewStore(client *redis.Client, ttl time.Duration, maxAttempts int) *Store {
	return &Store{client: client, ttl: ttl, maxAttempts: maxAttempts}
}

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func codeKey(email string) string {
	return "verify:code:" + NormalizeEmail(email)
}

func attemptsKey(email string) string {
	return "verify:attempts:" + NormalizeEmail(email)
}

// SaveCode hashes and stores a fresh code, replacing any outstanding
// one and resetting the attempt counter.
func (s *Store) SaveCode(ctx context.Context, email, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, codeKey(email), hash, s.ttl).Err(); err != nil {
		return err
	}
	return s.client.Del(ctx, attemptsKey(email)).Err()
}

// Check verifies a submitted code. A correct code consumes itself; a
// wrong one burns an attempt, and burning the last attempt invalidates
// the code entirely.
func (s *Store) Check(ctx context.Context, email, code string) error {
	hash, err := s.client.Get(ctx, codeKey(email)).Bytes()
	if err == redis.Nil {
		return ErrNoCode
	}
	if err != nil {
		return err
	}

	attempts, err := s.client.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return err
	}
	if attempts == 1 {
		if err := s.client.Expire(ctx, attemptsKey(email), s.ttl).Err(); err != nil {
			return err
		}
	}
	if attempts > int64(s.maxAttempts) {
		s.invalidate(ctx, email)
		return ErrLockedOut
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(code)) != nil {
		if attempts >= int64(s.maxAttempts) {
			s.invalidate(ctx, email)
			return ErrLockedOut
		}
		return ErrCodeMismatch
	}

	s.invalidate(ctx, email)
	return nil
}

func (s *Store) invalidate(ctx context.Context, email string) {
	_ = s.client.Del(ctx, codeKey(email), attemptsKey(email)).Err()
}
