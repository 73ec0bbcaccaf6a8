package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/smarttraffic/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2idCodec hashes with argon2.IDKey and a random per-password salt.
// Verify reads the parameters back from the stored string, so changing
// them later does not invalidate existing records.
type Argon2idCodec struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

func DefaultArgon2idCodec() Argon2idCodec {
	return Argon2idCodec{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

// Bounds accepted when reading parameters back from a stored hash.
const (
	maxArgon2idTime   = 16
	maxArgon2idMemory = 4 * 64 * 1024 // KiB
)

// DeriveKey runs argon2id over password and salt with the codec parameters.
func (c Argon2idCodec) DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, c.Time, c.Memory, c.Threads, c.KeyLen)
}

func (c Argon2idCodec) Encode(password string) (string, error) {
	salt := common.GenerateRandByteArray(c.SaltLen)
	key := c.DeriveKey([]byte(password), salt)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, c.Memory, c.Time, c.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

func (c Argon2idCodec) Verify(stored, password string) bool {
	params, salt, key, err := parseArgon2id(stored)
	if err != nil {
		return false
	}
	params.KeyLen = uint32(len(key))
	candidate := params.DeriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func parseArgon2id(s string) (Argon2idCodec, []byte, []byte, error) {
	var c Argon2idCodec

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(s, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return c, nil, nil, fmt.Errorf("not an argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return c, nil, nil, err
	}
	if version != argon2.Version {
		return c, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &c.Memory, &c.Time, &c.Threads); err != nil {
		return c, nil, nil, err
	}
	if err := checkArgon2idParams(c); err != nil {
		return c, nil, nil, err
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return c, nil, nil, err
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return c, nil, nil, err
	}
	if len(key) == 0 {
		return c, nil, nil, fmt.Errorf("empty argon2id hash")
	}
	c.SaltLen = len(salt)
	return c, salt, key, nil
}

// checkArgon2idParams rejects values argon2.IDKey would panic on, and
// memory or time costs far above anything Encode produces.
func checkArgon2idParams(c Argon2idCodec) error {
	switch {
	case c.Time < 1 || c.Time > maxArgon2idTime:
		return fmt.Errorf("argon2id time %d out of range", c.Time)
	case c.Threads < 1:
		return fmt.Errorf("argon2id parallelism %d out of range", c.Threads)
	case c.Memory < 8*uint32(c.Threads) || c.Memory > maxArgon2idMemory:
		return fmt.Errorf("argon2id memory %d out of range", c.Memory)
	}
	return nil
}
