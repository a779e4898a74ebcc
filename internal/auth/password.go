package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// VerifyPassword checks a candidate password against the configured secret.
// When hash is non-empty it must be an argon2id PHC string and takes
// precedence over the plaintext secret; otherwise the candidate is compared
// against plain in constant time.
func VerifyPassword(candidate, plain, hash string) (bool, error) {
	if hash != "" {
		return verifyArgon2id(candidate, hash)
	}
	if plain == "" {
		return false, errors.New("no login password configured")
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(plain)) == 1, nil
}

// verifyArgon2id checks a password against a PHC-formatted argon2id hash:
// $argon2id$v=19$m=<mem>,t=<iters>,p=<threads>$<b64 salt>$<b64 sum>
func verifyArgon2id(candidate, phc string) (bool, error) {
	parts := strings.Split(phc, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errors.New("invalid argon2id hash format")
	}
	if parts[2] != "v=19" {
		return false, fmt.Errorf("unsupported argon2id version: %s", parts[2])
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, fmt.Errorf("invalid argon2id params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}
	sum, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decode sum: %w", err)
	}

	got := argon2.IDKey([]byte(candidate), salt, t, m, p, uint32(len(sum)))
	return subtle.ConstantTimeCompare(got, sum) == 1, nil
}
