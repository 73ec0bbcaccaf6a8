package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fastArgon2id keeps tests quick; production parameters come from DefaultArgon2idCodec.
func fastArgon2id() Argon2idCodec {
	return Argon2idCodec{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
}

func TestNewPasswordCodec(t *testing.T) {
	tests := []struct {
		scheme string
		want   any
	}{
		{"plain", PlainCodec{}},
		{"BCRYPT", BcryptCodec{Cost: bcrypt.DefaultCost}},
		{" argon2id ", DefaultArgon2idCodec()},
	}
	for _, tc := range tests {
		t.Run(tc.scheme, func(t *testing.T) {
			c, err := NewPasswordCodec(tc.scheme)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}

	_, err := NewPasswordCodec("md5")
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestCodecs_VerifyRoundTrip(t *testing.T) {
	codecs := map[string]PasswordCodec{
		"plain":    PlainCodec{},
		"bcrypt":   BcryptCodec{Cost: bcrypt.MinCost},
		"argon2id": fastArgon2id(),
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			stored, err := c.Encode("p1")
			require.NoError(t, err)

			assert.True(t, c.Verify(stored, "p1"))
			assert.False(t, c.Verify(stored, "p2"))
			assert.False(t, c.Verify(stored, ""))
		})
	}
}

func TestPlainCodec_StoresVerbatim(t *testing.T) {
	stored, err := PlainCodec{}.Encode("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", stored)
}

func TestHashingCodecs_DoNotStorePlaintext(t *testing.T) {
	for _, c := range []PasswordCodec{BcryptCodec{Cost: bcrypt.MinCost}, fastArgon2id()} {
		stored, err := c.Encode("s3cret")
		require.NoError(t, err)
		assert.NotContains(t, stored, "s3cret")
	}
}

func TestArgon2id_SaltedPerEncode(t *testing.T) {
	c := fastArgon2id()
	a, err := c.Encode("same")
	require.NoError(t, err)
	b, err := c.Encode("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "$argon2id$v=19$m=8192,t=1,p=1$"))
}

func TestArgon2id_VerifyUsesStoredParameters(t *testing.T) {
	stored, err := fastArgon2id().Encode("pw")
	require.NoError(t, err)

	other := Argon2idCodec{Time: 3, Memory: 16 * 1024, Threads: 2, KeyLen: 16, SaltLen: 8}
	assert.True(t, other.Verify(stored, "pw"))
}

func TestArgon2id_MalformedStoredValue(t *testing.T) {
	c := fastArgon2id()
	for _, s := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=0$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=4,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=4294967295,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=300$c2FsdA$aGFzaA",
	} {
		assert.False(t, c.Verify(s, "pw"), s)
	}
}

func TestArgon2id_ZeroCostsDoNotPanic(t *testing.T) {
	c := fastArgon2id()
	for _, s := range []string{
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=0$c2FsdA$aGFzaA",
	} {
		assert.NotPanics(t, func() { assert.False(t, c.Verify(s, "pw")) }, s)
	}
}

func TestArgon2id_DefaultParamsRoundTrip(t *testing.T) {
	stored, err := DefaultArgon2idCodec().Encode("pw")
	require.NoError(t, err)

	params, _, _, err := parseArgon2id(stored)
	require.NoError(t, err)
	assert.Equal(t, DefaultArgon2idCodec().Memory, params.Memory)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	c := fastArgon2id()
	k1 := c.DeriveKey([]byte("secret-password"), []byte("fixed-salt"))
	k2 := c.DeriveKey([]byte("secret-password"), []byte("fixed-salt"))
	k3 := c.DeriveKey([]byte("secret-password"), []byte("other-salt"))

	assert.True(t, bytes.Equal(k1, k2))
	assert.False(t, bytes.Equal(k1, k3))
	assert.Len(t, k1, 32)
}
