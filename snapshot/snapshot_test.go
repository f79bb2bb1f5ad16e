package snapshot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/coilprox/geom"
)

func testClouds() []geom.PointCloud {
	return []geom.PointCloud{
		{{0, 0, 0}, {1.5, -2.25, 3.125}},
		nil, // empty cloud is preserved
		{{-0.1, 42, 1e-9}},
	}
}

func TestRoundtrip(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, testClouds(), c))

			clouds, err := Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, testClouds(), clouds)
		})
	}
}

func TestRoundtripEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, CompressionNone))

	clouds, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, clouds)
}

func TestReadBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("XXXX\x00\x00\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestReadUnknownCompression(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{'C', 'P', 'S', '1', 0xFF}))
	assert.ErrorIs(t, err, ErrUnknownCompression)
}

func TestWriteUnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testClouds(), Compression(7))
	assert.ErrorIs(t, err, ErrUnknownCompression)
}

func TestReadTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testClouds(), CompressionNone))

	full := buf.Bytes()
	for _, cut := range []int{3, 5, 8, len(full) - 4} {
		_, err := Read(bytes.NewReader(full[:cut]))
		assert.Error(t, err, "cut at %d bytes", cut)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coils.snap")
	require.NoError(t, Save(path, testClouds(), CompressionZSTD))

	clouds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, testClouds(), clouds)
}
