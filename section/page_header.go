package section

import (
	"github.com/arloliu/rowpack/errs"
)

// PageHeader is the fixed-size header section at the start of a row page.
//
// All multi-byte fields except Flag.Options follow the endianness declared
// in the flag; the Options field itself is always little-endian so the
// endianness bit can be read before an engine is chosen.
type PageHeader struct {
	// RowCount is the number of rows stored in the page.
	RowCount uint32 // byte offset 4-7
	// EntryCount is the number of (index, value) feature entries.
	EntryCount uint32 // byte offset 8-11
	// LabelCount is the number of label slots per row, always >= 1.
	LabelCount uint32 // byte offset 12-15

	// Compressed payload sizes in bytes, in page order. Payloads are laid
	// out back to back immediately after the header.
	OffsetPayloadSize uint32 // byte offset 16-19
	IndexPayloadSize  uint32 // byte offset 20-23
	ValuePayloadSize  uint32 // byte offset 24-27
	LabelPayloadSize  uint32 // byte offset 28-31
	WeightPayloadSize uint32 // byte offset 32-35

	// Reserved is unused padding, must be zero.
	Reserved uint32 // byte offset 36-39

	// Flag is the packed field for options, magic number, value type and
	// compression type.
	Flag PageFlag // byte offset 0-3
}

// NewPageHeader creates a new PageHeader with default flags. The counts and
// payload sizes are filled in by the page encoder.
func NewPageHeader() *PageHeader {
	return &PageHeader{
		Flag: NewPageFlag(),
	}
}

// PayloadSize returns the total compressed payload size recorded in the
// header.
func (h *PageHeader) PayloadSize() int {
	return int(h.OffsetPayloadSize) + int(h.IndexPayloadSize) +
		int(h.ValuePayloadSize) + int(h.LabelPayloadSize) + int(h.WeightPayloadSize)
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 40 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 40 bytes, or flag
//     validation errors
func (h *PageHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse options first to determine endianness (always little-endian
	// for the Options field itself).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.ValueType = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.RowCount = engine.Uint32(data[4:8])
	h.EntryCount = engine.Uint32(data[8:12])
	h.LabelCount = engine.Uint32(data[12:16])
	h.OffsetPayloadSize = engine.Uint32(data[16:20])
	h.IndexPayloadSize = engine.Uint32(data[20:24])
	h.ValuePayloadSize = engine.Uint32(data[24:28])
	h.LabelPayloadSize = engine.Uint32(data[28:32])
	h.WeightPayloadSize = engine.Uint32(data[32:36])
	h.Reserved = engine.Uint32(data[36:40])

	return h.Flag.Validate()
}

// Bytes serializes the PageHeader into a byte slice.
func (h *PageHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.ValueType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.RowCount)
	engine.PutUint32(b[8:12], h.EntryCount)
	engine.PutUint32(b[12:16], h.LabelCount)
	engine.PutUint32(b[16:20], h.OffsetPayloadSize)
	engine.PutUint32(b[20:24], h.IndexPayloadSize)
	engine.PutUint32(b[24:28], h.ValuePayloadSize)
	engine.PutUint32(b[28:32], h.LabelPayloadSize)
	engine.PutUint32(b[32:36], h.WeightPayloadSize)
	engine.PutUint32(b[36:40], h.Reserved)

	return b
}

// ParsePageHeader parses a PageHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing at least 40 header bytes
//
// Returns:
//   - PageHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParsePageHeader(data []byte) (PageHeader, error) {
	if len(data) < HeaderSize {
		return PageHeader{}, errs.ErrInvalidHeaderSize
	}

	h := PageHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return PageHeader{}, err
	}

	return h, nil
}
