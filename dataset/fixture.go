package dataset

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
	"unsafe"

	"github.com/hupe1980/distances/blobstore"
	"github.com/hupe1980/distances/codec"
	"github.com/hupe1980/distances/internal/conv"
	"github.com/hupe1980/distances/number"
)

const (
	fixtureMagic   = "DSTF"
	fixtureVersion = 1
)

var (
	// ErrFormat is returned for bytes that are not a valid fixture.
	ErrFormat = errors.New("dataset: invalid fixture")
	// ErrDType is returned when a fixture holds a different element type.
	ErrDType = errors.New("dataset: element type mismatch")
)

// Spec describes a generated matrix. Equal specs always produce equal data.
type Spec struct {
	Cardinality    int     `json:"cardinality"`
	Dimensionality int     `json:"dimensionality"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Seed           int64   `json:"seed"`
	Normalized     bool    `json:"normalized,omitempty"`
}

// Name returns the blob name of the fixture for element type T.
func Name[T number.Number](s Spec) string {
	unit := ""
	if s.Normalized {
		unit = "-unit"
	}
	return fmt.Sprintf("%s/c%d-d%d-s%d-r%g_%g%s.dstf",
		DType[T](), s.Cardinality, s.Dimensionality, s.Seed, s.Min, s.Max, unit)
}

// Generate produces the matrix described by s.
func Generate[T number.Number](s Spec) (Matrix[T], error) {
	if s.Cardinality < 0 || s.Dimensionality < 0 {
		return Matrix[T]{}, fmt.Errorf("dataset: negative shape %dx%d", s.Cardinality, s.Dimensionality)
	}
	if s.Normalized && !isFloat[T]() {
		return Matrix[T]{}, fmt.Errorf("dataset: cannot normalize %s", DType[T]())
	}
	m := RandomSeeded(s.Seed, s.Cardinality, s.Dimensionality, T(s.Min), T(s.Max))
	if s.Normalized {
		for i := range m.Rows {
			normalize(m.Row(i))
		}
	}
	return m, nil
}

type header struct {
	DType       string `json:"dtype"`
	Rows        int    `json:"rows"`
	Dim         int    `json:"dim"`
	Compression string `json:"compression"`
	Spec        Spec   `json:"spec"`
}

// FixtureOption configures Encode and LoadOrGenerate.
type FixtureOption func(*fixtureOptions)

type fixtureOptions struct {
	compression Compression
	codec       codec.Codec
}

func defaultFixtureOptions() fixtureOptions {
	return fixtureOptions{compression: CompressionZSTD, codec: codec.Default}
}

// WithCompression sets the payload compression. Default: ZSTD.
func WithCompression(c Compression) FixtureOption {
	return func(o *fixtureOptions) { o.compression = c }
}

// WithCodec sets the header codec. Default: codec.Default.
func WithCodec(c codec.Codec) FixtureOption {
	return func(o *fixtureOptions) { o.codec = c }
}

// Encode serializes m and the spec that produced it.
func Encode[T number.Number](m Matrix[T], s Spec, optFns ...FixtureOption) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	opts := defaultFixtureOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	hdr, err := opts.codec.Marshal(header{
		DType:       DType[T](),
		Rows:        m.Rows,
		Dim:         m.Dim,
		Compression: opts.compression.String(),
		Spec:        s,
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: encode header: %w", err)
	}

	block, err := compressBlock(appendElems(nil, m.Data), opts.compression)
	if err != nil {
		return nil, err
	}

	hdrLen, err := conv.Uint32(len(hdr))
	if err != nil {
		return nil, fmt.Errorf("dataset: header too large: %w", err)
	}

	name := opts.codec.Name()
	nameLen, err := conv.To[uint8](len(name))
	if err != nil {
		return nil, fmt.Errorf("dataset: codec name too long: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(fixtureMagic) + 2 + len(name) + 4 + len(hdr) + len(block))
	buf.WriteString(fixtureMagic)
	buf.WriteByte(fixtureVersion)
	buf.WriteByte(nameLen)
	buf.WriteString(name)
	buf.Write(binary.LittleEndian.AppendUint32(nil, hdrLen))
	buf.Write(hdr)
	buf.Write(block)
	return buf.Bytes(), nil
}

// Decode parses a fixture written by Encode for the same element type.
func Decode[T number.Number](b []byte) (Matrix[T], Spec, error) {
	var (
		m   Matrix[T]
		hdr header
	)
	r := fixtureReader{b: b}

	if string(r.next(len(fixtureMagic))) != fixtureMagic {
		return m, Spec{}, fmt.Errorf("%w: bad magic", ErrFormat)
	}
	if v := r.readByte(); v != fixtureVersion {
		return m, Spec{}, fmt.Errorf("%w: unsupported version %d", ErrFormat, v)
	}
	c, err := codec.ByName(string(r.next(int(r.readByte()))))
	if err != nil {
		return m, Spec{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	hdrLen := r.readUint32()
	if r.err != nil {
		return m, Spec{}, r.err
	}
	if err := c.Unmarshal(r.next(int(hdrLen)), &hdr); err != nil || r.err != nil {
		return m, Spec{}, fmt.Errorf("%w: header: %w", ErrFormat, errors.Join(err, r.err))
	}
	if want := DType[T](); hdr.DType != want {
		return m, Spec{}, fmt.Errorf("%w: fixture holds %s, want %s", ErrDType, hdr.DType, want)
	}
	comp, err := ParseCompression(hdr.Compression)
	if err != nil {
		return m, Spec{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	size, err := payloadSize(hdr.Rows, hdr.Dim, elemSize[T]())
	if err != nil {
		return m, Spec{}, err
	}
	payload, err := decompressBlock(r.rest(), comp, size)
	if err != nil {
		return m, Spec{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	m = NewMatrix[T](hdr.Rows, hdr.Dim)
	decodeElems(payload, m.Data)
	return m, hdr.Spec, nil
}

// Save encodes m and stores it under Name[T](s).
func Save[T number.Number](ctx context.Context, store blobstore.BlobStore, m Matrix[T], s Spec, optFns ...FixtureOption) error {
	b, err := Encode(m, s, optFns...)
	if err != nil {
		return err
	}
	return store.Put(ctx, Name[T](s), b)
}

// Load reads the fixture for s. A missing fixture returns an error matching
// blobstore.ErrNotFound.
func Load[T number.Number](ctx context.Context, store blobstore.BlobStore, s Spec) (Matrix[T], error) {
	b, err := blobstore.ReadAll(ctx, store, Name[T](s))
	if err != nil {
		return Matrix[T]{}, err
	}
	m, got, err := Decode[T](b)
	if err != nil {
		return Matrix[T]{}, err
	}
	if got != s {
		return Matrix[T]{}, fmt.Errorf("%w: stored spec %+v, want %+v", ErrFormat, got, s)
	}
	return m, nil
}

// LoadOrGenerate loads the fixture for s, or generates and saves it when it
// is missing. The boolean reports whether the matrix came from the store.
func LoadOrGenerate[T number.Number](ctx context.Context, store blobstore.BlobStore, s Spec, optFns ...FixtureOption) (Matrix[T], bool, error) {
	m, err := Load[T](ctx, store, s)
	if err == nil {
		return m, true, nil
	}
	if !errors.Is(err, blobstore.ErrNotFound) {
		return Matrix[T]{}, false, err
	}

	m, err = Generate[T](s)
	if err != nil {
		return Matrix[T]{}, false, err
	}
	if err := Save(ctx, store, m, s, optFns...); err != nil {
		return Matrix[T]{}, false, fmt.Errorf("dataset: save fixture: %w", err)
	}
	return m, false, nil
}

// payloadSize returns the byte size of a rows × dim matrix of elem-byte
// elements. Shapes that are negative or exceed a block are rejected.
func payloadSize(rows, dim, elem int) (uint32, error) {
	if rows < 0 || dim < 0 || int64(rows) > math.MaxUint32 || int64(dim) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: shape %dx%d", ErrFormat, rows, dim)
	}
	n := uint64(rows) * uint64(dim)
	if n > math.MaxUint32/uint64(elem) {
		return 0, fmt.Errorf("%w: %dx%d matrix exceeds a fixture block", ErrFormat, rows, dim)
	}
	return uint32(n * uint64(elem)), nil
}

// DType names the element type by kind and width, e.g. "float32" or "int8".
// int and uint map to their sized equivalents.
func DType[T number.Number]() string {
	bits := elemSize[T]() * 8
	switch {
	case isFloat[T]():
		return fmt.Sprintf("float%d", bits)
	case isSigned[T]():
		return fmt.Sprintf("int%d", bits)
	default:
		return fmt.Sprintf("uint%d", bits)
	}
}

func elemSize[T number.Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func isSigned[T number.Number]() bool {
	var zero T
	return zero-1 < 0
}

// normalize is NormalizeInPlace for any element type; integer rows are only
// reachable through Generate, which rejects them.
func normalize[T number.Number](v []T) bool {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return false
	}
	inv := 1 / math.Sqrt(sum)
	for i, x := range v {
		v[i] = T(float64(x) * inv)
	}
	return true
}

func appendElems[T number.Number](dst []byte, data []T) []byte {
	size, float := elemSize[T](), isFloat[T]()
	dst = slices.Grow(dst, len(data)*size)
	for _, v := range data {
		switch {
		case float && size == 4:
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
		case float:
			dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(v)))
		case size == 1:
			dst = append(dst, byte(v))
		case size == 2:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
		case size == 4:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
		default:
			dst = binary.LittleEndian.AppendUint64(dst, uint64(v))
		}
	}
	return dst
}

func decodeElems[T number.Number](src []byte, dst []T) {
	size, float, signed := elemSize[T](), isFloat[T](), isSigned[T]()
	for i := range dst {
		b := src[i*size:]
		switch {
		case float && size == 4:
			dst[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		case float:
			dst[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		case size == 1 && signed:
			dst[i] = T(int8(b[0]))
		case size == 1:
			dst[i] = T(b[0])
		case size == 2 && signed:
			dst[i] = T(int16(binary.LittleEndian.Uint16(b)))
		case size == 2:
			dst[i] = T(binary.LittleEndian.Uint16(b))
		case size == 4 && signed:
			dst[i] = T(int32(binary.LittleEndian.Uint32(b)))
		case size == 4:
			dst[i] = T(binary.LittleEndian.Uint32(b))
		case signed:
			dst[i] = T(int64(binary.LittleEndian.Uint64(b)))
		default:
			dst[i] = T(binary.LittleEndian.Uint64(b))
		}
	}
}

type fixtureReader struct {
	b   []byte
	off int
	err error
}

func (r *fixtureReader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.off+n > len(r.b) {
		r.err = fmt.Errorf("%w: truncated at offset %d", ErrFormat, r.off)
		return nil
	}
	out := r.b[r.off : r.off+n]
	r.off += n
	return out
}

func (r *fixtureReader) readByte() byte {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *fixtureReader) readUint32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *fixtureReader) rest() []byte {
	if r.err != nil {
		return nil
	}
	return r.b[r.off:]
}
