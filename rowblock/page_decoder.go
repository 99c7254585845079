package rowblock

import (
	"fmt"
	"math"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/errs"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/hash"
	"github.com/arloliu/rowpack/section"
)

// readValueFunc decodes one value from a binary payload, selected once per
// decoder from the value type tag.
type readValueFunc[D format.Number] func(engine endian.EndianEngine, buf []byte) D

func valueReader[D format.Number](valueType format.ValueType) (readValueFunc[D], error) {
	switch valueType {
	case format.TypeFloat32:
		return func(engine endian.EndianEngine, buf []byte) D {
			return D(math.Float32frombits(engine.Uint32(buf)))
		}, nil
	case format.TypeInt32:
		return func(engine endian.EndianEngine, buf []byte) D {
			return D(int32(engine.Uint32(buf))) //nolint:gosec
		}, nil
	case format.TypeInt64:
		return func(engine endian.EndianEngine, buf []byte) D {
			return D(int64(engine.Uint64(buf))) //nolint:gosec
		}, nil
	default:
		return nil, errs.ErrUnsupportedValueType
	}
}

// PageDecoder decodes a binary page back into a RowBlock.
//
// The constructor validates the header, the declared payload sizes and the
// trailing checksum; Decode then decompresses and reconstructs the block.
// A PageDecoder is bound to the page data it was created with.
type PageDecoder[D format.Number] struct {
	data      []byte
	header    section.PageHeader
	engine    endian.EndianEngine
	readValue readValueFunc[D]
}

// NewPageDecoder creates a decoder for the given page bytes.
//
// Parameters:
//   - data: A complete page as produced by PageEncoder.Encode
//
// Returns:
//   - *PageDecoder[D]: Decoder ready for decoding
//   - error: Header, size, value type or checksum validation errors
func NewPageDecoder[D format.Number](data []byte) (*PageDecoder[D], error) {
	if len(data) < section.MinPageSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	header, err := section.ParsePageHeader(data)
	if err != nil {
		return nil, err
	}

	if header.Flag.GetValueType() != format.ValueTypeOf[D]() {
		return nil, fmt.Errorf("%w: page holds %s", errs.ErrValueTypeMismatch, header.Flag.GetValueType())
	}

	pageSize := section.HeaderSize + header.PayloadSize() + section.ChecksumSize
	if len(data) < pageSize {
		return nil, errs.ErrInvalidPayloadSize
	}

	engine := header.Flag.GetEndianEngine()

	stored := engine.Uint64(data[pageSize-section.ChecksumSize : pageSize])
	if stored != hash.Checksum(data[:pageSize-section.ChecksumSize]) {
		return nil, errs.ErrChecksumMismatch
	}

	readValue, err := valueReader[D](header.Flag.GetValueType())
	if err != nil {
		return nil, err
	}

	return &PageDecoder[D]{
		data:      data[:pageSize],
		header:    header,
		engine:    engine,
		readValue: readValue,
	}, nil
}

// Header returns the parsed page header.
func (d *PageDecoder[D]) Header() section.PageHeader {
	return d.header
}

// Decode decompresses the page payloads and reconstructs the row block.
//
// Returns:
//   - *RowBlock[D]: The reconstructed, validated block
//   - error: Decompression errors, payload size mismatches, or block
//     invariant violations
func (d *PageDecoder[D]) Decode() (*RowBlock[D], error) {
	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	rows := int(d.header.RowCount)
	entries := int(d.header.EntryCount)
	labelCount := int(d.header.LabelCount)
	valueSize := d.header.Flag.GetValueType().Size()

	cursor := section.HeaderSize
	next := func(size uint32) []byte {
		payload := d.data[cursor : cursor+int(size)]
		cursor += int(size)

		return payload
	}

	offRaw, err := d.decompress(codec, next(d.header.OffsetPayloadSize), (rows+1)*8)
	if err != nil {
		return nil, fmt.Errorf("offset payload: %w", err)
	}

	idxRaw, err := d.decompress(codec, next(d.header.IndexPayloadSize), entries*4)
	if err != nil {
		return nil, fmt.Errorf("index payload: %w", err)
	}

	valRaw, err := d.decompress(codec, next(d.header.ValuePayloadSize), entries*valueSize)
	if err != nil {
		return nil, fmt.Errorf("value payload: %w", err)
	}

	labRaw, err := d.decompress(codec, next(d.header.LabelPayloadSize), rows*labelCount*valueSize)
	if err != nil {
		return nil, fmt.Errorf("label payload: %w", err)
	}

	wgtRaw := []byte(nil)
	if d.header.WeightPayloadSize > 0 {
		wgtRaw, err = d.decompress(codec, next(d.header.WeightPayloadSize), rows*4)
		if err != nil {
			return nil, fmt.Errorf("weight payload: %w", err)
		}
	}

	block := &RowBlock[D]{
		LabelCount: labelCount,
		Offset:     make([]uint64, 0, rows+1),
		Label:      make([]D, 0, rows*labelCount),
		Index:      make([]uint32, 0, entries),
		Value:      make([]D, 0, entries),
	}

	for p := 0; p < len(offRaw); p += 8 {
		block.Offset = append(block.Offset, d.engine.Uint64(offRaw[p:]))
	}

	for p := 0; p < len(idxRaw); p += 4 {
		block.Index = append(block.Index, d.engine.Uint32(idxRaw[p:]))
	}

	for p := 0; p < len(valRaw); p += valueSize {
		block.Value = append(block.Value, d.readValue(d.engine, valRaw[p:]))
	}

	for p := 0; p < len(labRaw); p += valueSize {
		block.Label = append(block.Label, d.readValue(d.engine, labRaw[p:]))
	}

	if len(wgtRaw) > 0 {
		block.Weight = make([]float32, 0, rows)
		for p := 0; p < len(wgtRaw); p += 4 {
			block.Weight = append(block.Weight, math.Float32frombits(d.engine.Uint32(wgtRaw[p:])))
		}
	}

	if err := block.Validate(); err != nil {
		return nil, err
	}

	return block, nil
}

// decompress inflates one payload section and verifies its decompressed
// size against the size implied by the header counts.
func (d *PageDecoder[D]) decompress(codec compress.Codec, payload []byte, wantSize int) ([]byte, error) {
	if len(payload) == 0 {
		if wantSize != 0 {
			return nil, errs.ErrInvalidPayloadSize
		}

		return nil, nil
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}

	if len(raw) != wantSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidPayloadSize, len(raw), wantSize)
	}

	return raw, nil
}
