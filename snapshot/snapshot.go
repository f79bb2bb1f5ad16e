// Package snapshot persists sets of discretized coil point clouds, so coil
// geometry sampled during one optimization run can be reloaded later.
//
// The format is self-describing: a 4-byte magic, one compression byte, then
// the (optionally compressed) payload. The payload is a uint32 cloud count
// followed by, per cloud, a uint32 point count and little-endian float64
// coordinate triples.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/coilprox/geom"
)

// Compression defines the compression algorithm used for the payload.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 frame compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

var magic = [4]byte{'C', 'P', 'S', '1'}

// maxCloudPoints bounds the per-cloud point count accepted on read, so a
// corrupt header cannot trigger an enormous allocation.
const maxCloudPoints = 1 << 26

var (
	// ErrBadMagic indicates data that is not a coilprox snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnknownCompression indicates an unsupported compression byte.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)

// Write serializes the clouds to w using the given compression.
func Write(w io.Writer, clouds []geom.PointCloud, c Compression) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(c)}); err != nil {
		return err
	}

	var pw io.Writer
	closeFn := func() error { return nil }
	switch c {
	case CompressionNone:
		pw = w
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		pw = zw
		closeFn = zw.Close
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		pw = zw
		closeFn = zw.Close
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}

	if err := writePayload(pw, clouds); err != nil {
		return err
	}
	return closeFn()
}

func writePayload(w io.Writer, clouds []geom.PointCloud) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(clouds))); err != nil {
		return err
	}
	for _, cloud := range clouds {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(cloud))); err != nil {
			return err
		}
		for _, p := range cloud {
			if err := binary.Write(w, binary.LittleEndian, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Read deserializes a snapshot written by Write. The compression is read from
// the header, so callers do not need to know it in advance. Truncated or
// corrupt data surfaces as an error, never as partial clouds.
func Read(r io.Reader) ([]geom.PointCloud, error) {
	var hdr [5]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if [4]byte(hdr[:4]) != magic {
		return nil, ErrBadMagic
	}

	var pr io.Reader
	switch Compression(hdr[4]) {
	case CompressionNone:
		pr = r
	case CompressionLZ4:
		pr = lz4.NewReader(r)
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		pr = zr
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, hdr[4])
	}

	return readPayload(pr)
}

func readPayload(r io.Reader) ([]geom.PointCloud, error) {
	var numClouds uint32
	if err := binary.Read(r, binary.LittleEndian, &numClouds); err != nil {
		return nil, err
	}

	clouds := make([]geom.PointCloud, numClouds)
	for i := range clouds {
		var numPoints uint32
		if err := binary.Read(r, binary.LittleEndian, &numPoints); err != nil {
			return nil, fmt.Errorf("snapshot: cloud %d: %w", i, err)
		}
		if numPoints > maxCloudPoints {
			return nil, fmt.Errorf("snapshot: cloud %d: point count %d exceeds limit", i, numPoints)
		}
		if numPoints == 0 {
			continue
		}
		cloud := make(geom.PointCloud, numPoints)
		for j := range cloud {
			if err := binary.Read(r, binary.LittleEndian, &cloud[j]); err != nil {
				return nil, fmt.Errorf("snapshot: cloud %d: %w", i, err)
			}
		}
		clouds[i] = cloud
	}

	return clouds, nil
}

// Save writes the clouds to path, creating or truncating the file.
func Save(path string, clouds []geom.PointCloud, c Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, clouds, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a snapshot file written by Save.
func Load(path string) ([]geom.PointCloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
