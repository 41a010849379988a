package cli

import (
	"errors"
	"fmt"

	"github.com/zarlcorp/randcred/internal/credential"
	"github.com/zarlcorp/randcred/internal/logger"
)

// length bounds shared by usernames and passwords
const (
	MinLength = 10
	MaxLength = 1_000_000
)

// strong passwords render green, shorter ones yellow
const strongPasswordLen = 25

var (
	ErrUsernameLength = errors.New("username length out of range")
	ErrPasswordLength = errors.New("password length out of range")
	ErrPool           = errors.New("pool must be at least 1")
)

// Options holds the parsed command-line values.
type Options struct {
	UsernameLen   int
	PasswordLen   int
	NoPunctuation bool
	ToFile        bool   // set when --write was given, even with an empty path
	Path          string // empty means a random file name
	Pool          int
	Label         string
	LogLevel      string
}

// DefaultOptions returns the values used when no flags are given.
func DefaultOptions() Options {
	return Options{
		UsernameLen: 10,
		PasswordLen: 25,
		Pool:        1,
		LogLevel:    logger.DefaultLevel,
	}
}

// Validate rejects lengths outside [MinLength, MaxLength] and empty pools.
func (o Options) Validate() error {
	if o.UsernameLen < MinLength || o.UsernameLen > MaxLength {
		return fmt.Errorf("%w: %d (must be %d..%d)", ErrUsernameLength, o.UsernameLen, MinLength, MaxLength)
	}
	if o.PasswordLen < MinLength || o.PasswordLen > MaxLength {
		return fmt.Errorf("%w: %d (must be %d..%d)", ErrPasswordLength, o.PasswordLen, MinLength, MaxLength)
	}
	if o.Pool < 1 {
		return fmt.Errorf("%w: got %d", ErrPool, o.Pool)
	}
	return nil
}

// RecordLabel returns the label to attach to each record.
// Labels only make sense for a single credential, so batches drop them.
func (o Options) RecordLabel() string {
	if o.Pool > 1 {
		return ""
	}
	return o.Label
}

func (o Options) usernameRequest() credential.Request {
	return credential.Request{Kind: credential.Username, Length: o.UsernameLen}
}

func (o Options) passwordRequest() credential.Request {
	return credential.Request{
		Kind:        credential.Password,
		Length:      o.PasswordLen,
		Punctuation: !o.NoPunctuation,
	}
}
