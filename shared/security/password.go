// Package security hashes and verifies user passwords.
//
// New hashes are argon2id in PHC string format. bcrypt hashes are still
// accepted so that accounts imported from the previous deployment keep
// working; callers are expected to re-hash those on the next successful login.
package security

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

var ErrUnsupportedHash = errors.New("unsupported password hash format")

// Params tunes the argon2id cost. Zero fields fall back to argon2.DefaultConfig().
type Params struct {
	TimeCost    uint32
	MemoryCost  uint32
	Parallelism uint8
}

var hasher = argon2.DefaultConfig()

// Configure replaces the package hasher parameters. It must be called before
// any concurrent use, typically once at boot.
func Configure(p Params) {
	cfg := argon2.DefaultConfig()
	if p.TimeCost > 0 {
		cfg.TimeCost = p.TimeCost
	}
	if p.MemoryCost > 0 {
		cfg.MemoryCost = p.MemoryCost
	}
	if p.Parallelism > 0 {
		cfg.Parallelism = p.Parallelism
	}
	hasher = cfg
}

// HashPassword returns an encoded argon2id hash with a random salt.
func HashPassword(password string) (string, error) {
	encoded, err := hasher.HashEncoded([]byte(password))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// A mismatch is (false, nil); an error means the hash itself is unusable.
func VerifyPassword(password, encoded string) (bool, error) {
	switch {
	case isArgon2(encoded):
		ok, err := argon2.VerifyEncoded([]byte(password), []byte(encoded))
		if err != nil {
			return false, fmt.Errorf("verify argon2 hash: %w", err)
		}
		return ok, nil
	case isBcrypt(encoded):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("verify bcrypt hash: %w", err)
		}
		return true, nil
	default:
		return false, ErrUnsupportedHash
	}
}

// NeedsRehash reports whether the encoded hash was produced by a legacy scheme.
func NeedsRehash(encoded string) bool {
	return !isArgon2(encoded)
}

func isArgon2(encoded string) bool {
	return strings.HasPrefix(encoded, "$argon2")
}

func isBcrypt(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}
