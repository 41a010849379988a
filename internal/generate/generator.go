// Package generate samples credentials from a cryptographically secure source.
// All generation uses crypto/rand, never math/rand.
package generate

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/randcred/internal/credential"
)

// character classes
const (
	Letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Generator produces random credentials using crypto/rand.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Username returns n characters drawn uniformly from Letters.
// n <= 0 yields an empty string.
func (g *Generator) Username(n int) string {
	return sample(Letters, n)
}

// Password returns n characters drawn uniformly from PasswordCharset(punctuation).
// The length is not validated here; callers enforce their own bounds.
func (g *Generator) Password(n int, punctuation bool) string {
	return sample(PasswordCharset(punctuation), n)
}

// Generate serves a single request with the matching sampler.
func (g *Generator) Generate(req credential.Request) string {
	if req.Kind == credential.Password {
		return g.Password(req.Length, req.Punctuation)
	}
	return g.Username(req.Length)
}

// Credential generates an independent username/password pair.
func (g *Generator) Credential(user, pass credential.Request) credential.Credential {
	return credential.Credential{
		Username: g.Generate(user),
		Password: g.Generate(pass),
	}
}

// HexName returns n random lowercase hexadecimal characters.
func (g *Generator) HexName(n int) string {
	if n <= 0 {
		return ""
	}
	b, err := zcrypto.RandBytes((n + 1) / 2)
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("zcrypto: " + err.Error())
	}
	return hex.EncodeToString(b)[:n]
}

// PasswordCharset returns letters and digits, plus punctuation when requested.
func PasswordCharset(punctuation bool) string {
	if punctuation {
		return Letters + Digits + Punctuation
	}
	return Letters + Digits
}

// sample draws n bytes independently and uniformly from charset.
func sample(charset string, n int) string {
	if n <= 0 {
		return ""
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = pickByte(charset)
	}
	return string(buf)
}

// pickByte returns a random byte from a string.
func pickByte(s string) byte {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
