package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/distances/internal/conv"
)

// Compression selects how a fixture payload is stored.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses the String form of a compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("dataset: unknown compression %q", s)
	}
}

var (
	errBlockTooSmall = errors.New("dataset: block too small")
	errSizeMismatch  = errors.New("dataset: decompressed size mismatch")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Block layout: [uncompressed u32][compressed u32][data]. A compressed size of
// 0 marks data stored raw, which also happens when compression saves < 10%.
const blockHeaderSize = 8

func compressBlock(data []byte, c Compression) ([]byte, error) {
	var (
		packed []byte
		err    error
	)
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		packed, err = compressLZ4(data)
	case CompressionZSTD:
		packed, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("dataset: unknown compression %d", c)
	}
	if err != nil {
		return nil, err
	}

	rawSize, err := conv.Uint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("dataset: payload too large: %w", err)
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9 {
		out := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], rawSize)
		copy(out[blockHeaderSize:], data)
		return out, nil
	}

	out := make([]byte, blockHeaderSize+len(packed))
	binary.LittleEndian.PutUint32(out[0:], rawSize)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(packed)))
	copy(out[blockHeaderSize:], packed)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return nil, err
	}
	// n == 0 means incompressible.
	return buf[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

// decompressBlock decodes a block whose payload must be exactly want bytes.
// The recorded raw size is checked against want before anything is allocated.
func decompressBlock(block []byte, c Compression, want uint32) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, errBlockTooSmall
	}
	rawSize := binary.LittleEndian.Uint32(block[0:])
	packedSize := binary.LittleEndian.Uint32(block[4:])
	body := block[blockHeaderSize:]

	if rawSize != want {
		return nil, fmt.Errorf("%w: block holds %d bytes, want %d", errSizeMismatch, rawSize, want)
	}

	if packedSize == 0 {
		if uint64(len(body)) < uint64(rawSize) {
			return nil, errBlockTooSmall
		}
		return body[:rawSize], nil
	}
	if uint64(len(body)) < uint64(packedSize) {
		return nil, errBlockTooSmall
	}
	body = body[:packedSize]
	n, err := conv.Int(rawSize)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)

	switch c {
	case CompressionLZ4:
		got, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, err
		}
		if got != n {
			return nil, errSizeMismatch
		}
		return out, nil
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(body, out[:0])
		if err != nil {
			return nil, err
		}
		if len(decoded) != n {
			return nil, errSizeMismatch
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("dataset: compressed block with compression %v", c)
	}
}
