//go:build unit
// +build unit

package codec

import (
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		data := []byte{0xfb, 0xff, 0x00, 0x3e, 0x3f, 0x10}
		text := Encode(data)

		assert.NotContains(t, text, "=")
		assert.NotContains(t, text, "+")
		assert.NotContains(t, text, "/")

		decoded, err := Decode(text)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	})

	t.Run("KnownValue", func(t *testing.T) {
		assert.Equal(t, "-_8", Encode([]byte{0xfb, 0xff}))
		assert.Equal(t, "aGVsbG8", Encode([]byte("hello")))
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		decoded, err := Decode("  aGVsbG8\n")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), decoded)
	})

	t.Run("RejectsMalformed", func(t *testing.T) {
		for _, input := range []string{"aGVsbG8=", "a+b/", "!!!!", "a"} {
			_, err := Decode(input)
			assert.ErrorIs(t, err, crypto.ErrEncoding, "input %q", input)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Encode(nil))
		decoded, err := Decode("")
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})
}

func TestEncodeWithFormats(t *testing.T) {
	data := []byte{0xfb, 0xff}

	std, err := EncodeWith(FormatStandard, data)
	require.NoError(t, err)
	assert.Equal(t, "+/8=", std)

	url, err := EncodeWith(FormatURLSafe, data)
	require.NoError(t, err)
	assert.Equal(t, "-_8", url)

	decoded, err := DecodeWith(FormatStandard, std)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	_, err = DecodeWith(FormatStandard, url)
	assert.ErrorIs(t, err, crypto.ErrEncoding)

	_, err = EncodeWith(Format("hex"), data)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("standard")
	require.NoError(t, err)
	assert.Equal(t, FormatStandard, f)

	f, err = ParseFormat("urlsafe")
	require.NoError(t, err)
	assert.Equal(t, FormatURLSafe, f)

	_, err = ParseFormat("URLSAFE")
	assert.Error(t, err)
}
