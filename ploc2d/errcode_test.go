package ploc2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeError(t *testing.T) {
	require := require.New(t)

	t.Run("Known Codes", func(t *testing.T) {
		expected := map[string]string{
			"9100": "image acquisition failed",
			"9101": "could not store image to SD card",
			"9200": "no valid image found",
			"9210": "not calibrated",
			"9202": "not aligned",
			"9203": "job not valid",
			"9400": "alignment failed",
			"9401": "alignment target not found",
			"9600": "locate failed",
			"9601": "locate failed, score too low",
			"9999": "unknown error",
		}

		require.Len(errorCatalog, len(expected))
		for code, text := range expected {
			require.Equal(text, DescribeError(code), "code %s", code)
		}
	})

	t.Run("Unknown Code", func(t *testing.T) {
		require.Empty(DescribeError("1234"))
	})

	t.Run("Empty Code", func(t *testing.T) {
		require.Empty(DescribeError(""))
	})
}
