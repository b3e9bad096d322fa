package sha256

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func TestDigest(t *testing.T) {
	d := Sum256([]byte("abc"))
	const exp = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	assert.Equal(t, d.String(), exp)
	assert.Equal(t, len(d.Bytes()), Size)

	b := d.Bytes()
	b[0] ^= 0xFF
	assert.Equal(t, d.String(), exp)
}

func TestParseDigest(t *testing.T) {
	const s = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	d, err := ParseDigest(s)
	assert.NoError(t, err)
	assert.Equal(t, d, Sum256([]byte("abc")))

	d, err = ParseDigest(strings.ToUpper(s))
	assert.NoError(t, err)
	assert.Equal(t, d.String(), s)

	for _, bad := range []string{"", "abc", s[:63], s + "0", "zz" + s[2:]} {
		_, err := ParseDigest(bad)
		assert.Error(t, err)
		assert.That(t, errors.Is(err, ErrInvalidDigest))
	}
}

func TestDigest_JSON(t *testing.T) {
	in := struct{ Sum Digest }{Sum: Sum256(nil)}

	data, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.Equal(t, string(data), `{"Sum":"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"}`)

	var out struct{ Sum Digest }
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, out, in)
}
