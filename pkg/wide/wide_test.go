package wide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"C:\\app\\target.exe",
		"--flag",
		"Grüße aus Köln",
		"日本語のパス",
		"emoji \U0001F680 outside the BMP",
	}

	for _, in := range inputs {
		buf, err := Encode(in)
		require.NoError(t, err, in)
		require.NotEmpty(t, buf)
		assert.Equal(t, uint16(0), buf[len(buf)-1], "missing terminator for %q", in)
		assert.Equal(t, in, Decode(buf[:len(buf)-1]))
		assert.Equal(t, in, Decode(buf))
	}
}

func TestEncode_SingleTerminator(t *testing.T) {
	buf, err := Encode("abc")
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a', 'b', 'c', 0}, buf)
}

func TestEncode_SurrogatePair(t *testing.T) {
	buf, err := Encode("\U0001F680")
	require.NoError(t, err)
	assert.Len(t, buf, 3)
}

func TestEncode_EmbeddedNul(t *testing.T) {
	_, err := Encode("a\x00b")
	assert.ErrorIs(t, err, ErrEmbeddedNul)
}

func TestEncode_FreshBuffers(t *testing.T) {
	a, err := Encode("same")
	require.NoError(t, err)
	b, err := Encode("same")
	require.NoError(t, err)

	a[0] = 'X'
	assert.Equal(t, uint16('s'), b[0])
}

func TestEncodeOptional(t *testing.T) {
	buf, err := EncodeOptional("")
	require.NoError(t, err)
	assert.Nil(t, buf)

	buf, err = EncodeOptional("C:\\app")
	require.NoError(t, err)
	assert.Equal(t, "C:\\app", Decode(buf))
}
