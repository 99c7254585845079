package format

type (
	ValueType       uint8
	CompressionType uint8
)

const (
	TypeFloat32 ValueType = 0x1 // TypeFloat32 represents 32-bit floating point values.
	TypeInt32   ValueType = 0x2 // TypeInt32 represents 32-bit signed integer values.
	TypeInt64   ValueType = 0x3 // TypeInt64 represents 64-bit signed integer values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Number is the closed set of value types a row block can carry.
// It matches the three decode strategies of the CSV parser.
type Number interface {
	float32 | int32 | int64
}

// ValueTypeOf returns the ValueType tag for the concrete type D.
func ValueTypeOf[D Number]() ValueType {
	var zero D
	switch any(zero).(type) {
	case float32:
		return TypeFloat32
	case int32:
		return TypeInt32
	case int64:
		return TypeInt64
	default:
		return 0
	}
}

// Size returns the encoded size of one value in bytes, or 0 for an
// invalid type.
func (v ValueType) Size() int {
	switch v {
	case TypeFloat32, TypeInt32:
		return 4
	case TypeInt64:
		return 8
	default:
		return 0
	}
}

func (v ValueType) String() string {
	switch v {
	case TypeFloat32:
		return "Float32"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
