package ploc2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRequest(t *testing.T) {
	require := require.New(t)

	t.Run("Without Match", func(t *testing.T) {
		data, err := encodeRequest(1, nil)
		require.NoError(err)
		require.Equal("<message><name>Run.Locate</name><job>1</job></message>", string(data))
	})

	t.Run("With Match", func(t *testing.T) {
		match := 2
		data, err := encodeRequest(1, &match)
		require.NoError(err)
		require.Equal("<message><name>Run.Locate</name><job>1</job><match>2</match></message>", string(data))
	})

	t.Run("Match Zero Is Still Emitted", func(t *testing.T) {
		match := 0
		data, err := encodeRequest(7, &match)
		require.NoError(err)
		require.Equal("<message><name>Run.Locate</name><job>7</job><match>0</match></message>", string(data))
	})
}

func TestDecodeEnvelope(t *testing.T) {
	require := require.New(t)

	t.Run("Flat Reply", func(t *testing.T) {
		reply := "<message><name>Run.Locate.Ok</name><match>1</match><x>102.5</x></message>"
		fields, err := decodeEnvelope([]byte(reply))
		require.NoError(err)
		require.Equal("Run.Locate.Ok", fields["name"])
		require.Equal("1", fields["match"])
		require.Equal("102.5", fields["x"])
	})

	t.Run("Unknown Tags Are Kept", func(t *testing.T) {
		reply := "<message><name>Run.Locate.Ok</name><firmware>3.0</firmware></message>"
		fields, err := decodeEnvelope([]byte(reply))
		require.NoError(err)
		require.Equal("3.0", fields["firmware"])
	})

	t.Run("Nested Structure Is Discarded", func(t *testing.T) {
		reply := "<message><name>Run.Locate.Ok</name><extra><inner>x</inner></extra></message>"
		fields, err := decodeEnvelope([]byte(reply))
		require.NoError(err)
		require.Equal("Run.Locate.Ok", fields["name"])
	})

	t.Run("Truncated Reply", func(t *testing.T) {
		_, err := decodeEnvelope([]byte("<message><name>Run.Locate.Ok</name>"))
		require.Error(err)
	})

	t.Run("Not XML", func(t *testing.T) {
		_, err := decodeEnvelope([]byte("definitely not xml"))
		require.Error(err)
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := decodeEnvelope(nil)
		require.Error(err)
	})
}
