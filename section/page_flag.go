package section

import (
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/errs"
	"github.com/arloliu/rowpack/format"
)

// PageFlag represents the packed flag field in the page header.
type PageFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the page format:
	//   - 0xEC10 (0b1110_1100_0001_0000): Row page format v1
	Options uint16

	// ValueType is an enum indicating the value type stored in the value
	// and label payloads.
	ValueType uint8

	// CompressionType is an enum indicating the compression applied to all
	// payload sections.
	CompressionType uint8
}

var validValueTypes = map[uint8]struct{}{
	uint8(format.TypeFloat32): {},
	uint8(format.TypeInt32):   {},
	uint8(format.TypeInt64):   {},
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewPageFlag creates a new PageFlag with default settings: little-endian,
// float32 values, zstd compression.
func NewPageFlag() PageFlag {
	return PageFlag{
		Options:         MagicPageV1Opt,
		ValueType:       uint8(format.TypeFloat32),
		CompressionType: uint8(format.CompressionZstd),
	}
}

// IsLittleEndian returns whether the page payloads are little-endian.
func (f PageFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian marks the page payloads as little-endian.
func (f *PageFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian marks the page payloads as big-endian.
func (f *PageFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f PageFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// GetValueType returns the value type enum stored in the flag.
func (f PageFlag) GetValueType() format.ValueType {
	return format.ValueType(f.ValueType)
}

// SetValueType stores the value type enum in the flag.
func (f *PageFlag) SetValueType(v format.ValueType) {
	f.ValueType = uint8(v)
}

// GetCompression returns the compression type enum stored in the flag.
func (f PageFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression stores the compression type enum in the flag.
func (f *PageFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits and enum fields.
//
// Returns:
//   - error: ErrInvalidMagicNumber or ErrInvalidHeaderFlags, nil when valid
func (f PageFlag) Validate() error {
	if f.Options&MagicNumberMask != MagicPageV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validValueTypes[f.ValueType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
