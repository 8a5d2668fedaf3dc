package crypto

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func testKey(t *testing.T, fill byte) *Key {
	t.Helper()
	key, err := NewKey(bytes.Repeat([]byte{fill}, KeySize))
	require.NoError(t, err)
	return key
}

func suites() []string {
	return []string{SuiteAESGCM, SuiteChaCha20Poly1305}
}

func newTestCipher(t *testing.T, suite string) FieldCipher {
	t.Helper()
	c, err := NewFieldCipher(suite, Random)
	require.NoError(t, err)
	return c
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	plaintexts := []string{"", "hunter2", "пароль с юникодом 🔐", string(bytes.Repeat([]byte("x"), 4096))}

	for _, suite := range suites() {
		c := newTestCipher(t, suite)
		key := testKey(t, 0x42)
		for _, pt := range plaintexts {
			ct, iv, err := c.Seal(pt, key)
			require.NoError(t, err, suite)
			assert.Len(t, iv, IVSize)
			assert.NotEmpty(t, ct, "even empty plaintext yields a tag")

			got, err := c.Open(ct, iv, key)
			require.NoError(t, err, suite)
			assert.Equal(t, pt, got)
		}
	}
}

func TestFieldCipher_SamePlaintextTwiceDiffers(t *testing.T) {
	d := newTestDeriver(t)
	key, err := d.Derive([]byte("correct horse battery staple"), make([]byte, SaltSize))
	require.NoError(t, err)

	c := newTestCipher(t, SuiteAESGCM)
	ct1, iv1, err := c.Seal("hunter2", key)
	require.NoError(t, err)
	ct2, iv2, err := c.Seal("hunter2", key)
	require.NoError(t, err)

	assert.NotEqual(t, iv1, iv2)
	assert.NotEqual(t, ct1, ct2)

	for _, pair := range [][2][]byte{{ct1, iv1}, {ct2, iv2}} {
		pt, err := c.Open(pair[0], pair[1], key)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", pt)
	}
}

func TestFieldCipher_TamperSensitivity(t *testing.T) {
	for _, suite := range suites() {
		c := newTestCipher(t, suite)
		key := testKey(t, 0x07)

		ct, iv, err := c.Seal("tamper me", key)
		require.NoError(t, err)

		for i := 0; i < len(ct)*8; i++ {
			bad := bytes.Clone(ct)
			bad[i/8] ^= 1 << (i % 8)
			_, err := c.Open(bad, iv, key)
			require.ErrorIs(t, err, ErrAuthentication, "%s: ciphertext bit %d", suite, i)
		}
		for i := 0; i < len(iv)*8; i++ {
			bad := bytes.Clone(iv)
			bad[i/8] ^= 1 << (i % 8)
			_, err := c.Open(ct, bad, key)
			require.ErrorIs(t, err, ErrAuthentication, "%s: iv bit %d", suite, i)
		}
	}
}

func TestFieldCipher_WrongKeyFails(t *testing.T) {
	d := newTestDeriver(t)
	salt := bytes.Repeat([]byte{0x09}, SaltSize)
	keyA, err := d.Derive([]byte("secret A"), salt)
	require.NoError(t, err)
	keyB, err := d.Derive([]byte("secret B"), salt)
	require.NoError(t, err)

	c := newTestCipher(t, SuiteAESGCM)
	ct, iv, err := c.Seal("only for A", keyA)
	require.NoError(t, err)

	pt, err := c.Open(ct, iv, keyB)
	assert.Empty(t, pt)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestFieldCipher_MalformedInputs(t *testing.T) {
	c := newTestCipher(t, SuiteAESGCM)
	key := testKey(t, 0x01)
	ct, iv, err := c.Seal("value", key)
	require.NoError(t, err)

	tests := []struct {
		name string
		ct   []byte
		iv   []byte
	}{
		{name: "truncated iv", ct: ct, iv: iv[:8]},
		{name: "empty iv", ct: ct, iv: nil},
		{name: "empty ciphertext", ct: nil, iv: iv},
		{name: "truncated ciphertext", ct: ct[:len(ct)-1], iv: iv},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Open(tt.ct, tt.iv, key)
			assert.ErrorIs(t, err, ErrAuthentication)
		})
	}
}

func TestFieldCipher_DestroyedKey(t *testing.T) {
	c := newTestCipher(t, SuiteAESGCM)
	key := testKey(t, 0x03)
	ct, iv, err := c.Seal("value", key)
	require.NoError(t, err)

	key.Destroy()

	_, _, err = c.Seal("value", key)
	assert.ErrorIs(t, err, ErrKeyDestroyed)
	_, err = c.Open(ct, iv, key)
	assert.ErrorIs(t, err, ErrKeyDestroyed)
}

func TestFieldCipher_RandomFailure(t *testing.T) {
	c, err := NewFieldCipher(SuiteAESGCM, failingReader{})
	require.NoError(t, err)

	_, _, err = c.Seal("value", testKey(t, 0x04))
	assert.Error(t, err)
}

func TestNewFieldCipher_UnknownSuite(t *testing.T) {
	_, err := NewFieldCipher("rot13", Random)
	assert.ErrorIs(t, err, ErrUnknownSuite)
}

func TestFieldCipher_IVUniqueness(t *testing.T) {
	const n = 10_000
	c := newTestCipher(t, SuiteAESGCM)
	key := testKey(t, 0x55)

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		_, iv, err := c.Seal("same", key)
		require.NoError(t, err)
		seen[string(iv)] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestFieldCipher_IVUniquenessConcurrent(t *testing.T) {
	const workers, perWorker = 8, 500
	c := newTestCipher(t, SuiteChaCha20Poly1305)
	key := testKey(t, 0x66)

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ct, iv, err := c.Seal("concurrent", key)
				if !assert.NoError(t, err) {
					return
				}
				pt, err := c.Open(ct, iv, key)
				assert.NoError(t, err)
				assert.Equal(t, "concurrent", pt)

				mu.Lock()
				seen[string(iv)] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestFieldCipher_Suite(t *testing.T) {
	for _, suite := range suites() {
		assert.Equal(t, suite, newTestCipher(t, suite).Suite())
	}
}
