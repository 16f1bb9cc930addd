package lanes

// Concrete lane vector types for the common element widths.
type (
	F32x4  = Vec[float32, [4]float32]
	F32x8  = Vec[float32, [8]float32]
	F32x16 = Vec[float32, [16]float32]

	F64x4  = Vec[float64, [4]float64]
	F64x8  = Vec[float64, [8]float64]
	F64x16 = Vec[float64, [16]float64]

	U32x4  = Vec[uint32, [4]uint32]
	U32x8  = Vec[uint32, [8]uint32]
	U32x16 = Vec[uint32, [16]uint32]

	I32x4  = Vec[int32, [4]int32]
	I32x8  = Vec[int32, [8]int32]
	I32x16 = Vec[int32, [16]int32]

	U64x4 = Vec[uint64, [4]uint64]
	U64x8 = Vec[uint64, [8]uint64]
	I64x4 = Vec[int64, [4]int64]
	I64x8 = Vec[int64, [8]int64]

	U8x16 = Vec[uint8, [16]uint8]
	I8x16 = Vec[int8, [16]int8]
)

// Widths lists the supported lane counts in ascending order.
var Widths = []int{4, 8, 16}
