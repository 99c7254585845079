package rowblock

import (
	"fmt"
	"math"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/errs"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/hash"
	"github.com/arloliu/rowpack/internal/options"
	"github.com/arloliu/rowpack/internal/pool"
	"github.com/arloliu/rowpack/section"
)

// pageConfig holds the page encoding settings shared by all value types.
type pageConfig struct {
	flag  section.PageFlag
	codec compress.Codec
}

// PageOption configures a PageEncoder.
type PageOption = options.Option[*pageConfig]

// WithPageCompression selects the compression codec applied to all payload
// sections of the page. The default is Zstd.
func WithPageCompression(compression format.CompressionType) PageOption {
	return options.New(func(cfg *pageConfig) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}

		cfg.flag.SetCompression(compression)
		cfg.codec = codec

		return nil
	})
}

// WithPageLittleEndian encodes page payloads in little-endian byte order,
// the default.
func WithPageLittleEndian() PageOption {
	return options.NoError(func(cfg *pageConfig) {
		cfg.flag.WithLittleEndian()
	})
}

// WithPageBigEndian encodes page payloads in big-endian byte order.
func WithPageBigEndian() PageOption {
	return options.NoError(func(cfg *pageConfig) {
		cfg.flag.WithBigEndian()
	})
}

// appendValueFunc appends one value in binary form, selected once per
// encoder from the value type tag.
type appendValueFunc[D format.Number] func(engine endian.EndianEngine, buf []byte, v D) []byte

func valueAppender[D format.Number](valueType format.ValueType) (appendValueFunc[D], error) {
	switch valueType {
	case format.TypeFloat32:
		return func(engine endian.EndianEngine, buf []byte, v D) []byte {
			return engine.AppendUint32(buf, math.Float32bits(float32(v)))
		}, nil
	case format.TypeInt32:
		return func(engine endian.EndianEngine, buf []byte, v D) []byte {
			return engine.AppendUint32(buf, uint32(int32(v)))
		}, nil
	case format.TypeInt64:
		return func(engine endian.EndianEngine, buf []byte, v D) []byte {
			return engine.AppendUint64(buf, uint64(int64(v)))
		}, nil
	default:
		return nil, errs.ErrUnsupportedValueType
	}
}

// PageEncoder serializes row blocks into self-contained binary pages.
//
// A PageEncoder is stateless between Encode calls and may be reused for any
// number of blocks, but is not safe for concurrent use.
type PageEncoder[D format.Number] struct {
	cfg         pageConfig
	appendValue appendValueFunc[D]
}

// NewPageEncoder creates a page encoder for blocks of value type D.
//
// Parameters:
//   - opts: Optional configuration (compression, endianness)
//
// Returns:
//   - *PageEncoder[D]: The created encoder
//   - error: Invalid option error
func NewPageEncoder[D format.Number](opts ...PageOption) (*PageEncoder[D], error) {
	valueType := format.ValueTypeOf[D]()

	cfg := pageConfig{flag: section.NewPageFlag()}
	cfg.flag.SetValueType(valueType)

	// Default codec matches the default flag.
	codec, err := compress.GetCodec(cfg.flag.GetCompression())
	if err != nil {
		return nil, err
	}
	cfg.codec = codec

	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	appendValue, err := valueAppender[D](valueType)
	if err != nil {
		return nil, err
	}

	return &PageEncoder[D]{cfg: cfg, appendValue: appendValue}, nil
}

// Encode serializes the block into a new page byte slice.
//
// The block is validated first; an inconsistent block is refused rather
// than persisted.
//
// Returns:
//   - []byte: The encoded page, owned by the caller
//   - error: Validation or compression errors
func (e *PageEncoder[D]) Encode(block *RowBlock[D]) ([]byte, error) {
	if err := block.Validate(); err != nil {
		return nil, err
	}

	engine := e.cfg.flag.GetEndianEngine()
	valueSize := e.cfg.flag.GetValueType().Size()

	offPayload := make([]byte, 0, len(block.Offset)*8)
	for _, o := range block.Offset {
		offPayload = engine.AppendUint64(offPayload, o)
	}

	idxPayload := make([]byte, 0, len(block.Index)*4)
	for _, idx := range block.Index {
		idxPayload = engine.AppendUint32(idxPayload, idx)
	}

	valPayload := make([]byte, 0, len(block.Value)*valueSize)
	for _, v := range block.Value {
		valPayload = e.appendValue(engine, valPayload, v)
	}

	labPayload := make([]byte, 0, len(block.Label)*valueSize)
	for _, v := range block.Label {
		labPayload = e.appendValue(engine, labPayload, v)
	}

	wgtPayload := make([]byte, 0, len(block.Weight)*4)
	for _, w := range block.Weight {
		wgtPayload = engine.AppendUint32(wgtPayload, math.Float32bits(w))
	}

	header := section.NewPageHeader()
	header.Flag = e.cfg.flag
	header.RowCount = uint32(block.Rows())       //nolint:gosec
	header.EntryCount = uint32(len(block.Index)) //nolint:gosec
	header.LabelCount = uint32(block.LabelCount) //nolint:gosec

	payloads := make([][]byte, 0, 5)
	sizes := []*uint32{
		&header.OffsetPayloadSize,
		&header.IndexPayloadSize,
		&header.ValuePayloadSize,
		&header.LabelPayloadSize,
		&header.WeightPayloadSize,
	}

	for i, raw := range [][]byte{offPayload, idxPayload, valPayload, labPayload, wgtPayload} {
		// Empty payloads are stored as zero bytes, not as empty compressed
		// frames, so the decoder can tell them apart cheaply.
		if len(raw) == 0 {
			payloads = append(payloads, nil)
			continue
		}

		compressed, err := e.cfg.codec.Compress(raw)
		if err != nil {
			return nil, fmt.Errorf("compress page payload: %w", err)
		}

		payloads = append(payloads, compressed)
		*sizes[i] = uint32(len(compressed)) //nolint:gosec
	}

	buf := pool.GetPageBuffer()
	defer pool.PutPageBuffer(buf)

	buf.Grow(section.HeaderSize + header.PayloadSize() + section.ChecksumSize)
	_, _ = buf.Write(header.Bytes())
	for _, p := range payloads {
		_, _ = buf.Write(p)
	}

	checksum := hash.Checksum(buf.Bytes())
	buf.B = engine.AppendUint64(buf.B, checksum)

	page := make([]byte, buf.Len())
	copy(page, buf.Bytes())

	return page, nil
}
