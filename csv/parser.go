package csv

import (
	"fmt"

	"github.com/arloliu/rowpack/errs"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/rowblock"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser converts byte ranges of delimited text into sparse row blocks.
//
// The decode strategy for the value type D is resolved once at
// construction. A Parser holds no mutable state between calls: concurrent
// ParseBlock calls are safe as long as each operates on its own byte range
// and its own output block.
type Parser[D format.Number] struct {
	cfg        Config
	labelCount int
	// weightColumn is the effective weight column: the configured one when
	// D is float32, otherwise -1. Under integer value types the weight
	// role is unreachable and the column parses as a regular feature.
	weightColumn int
	decode       decodeFunc[D]
}

// NewParser creates a parser for the resolved configuration.
//
// Parameters:
//   - cfg: Configuration from Params.Resolve
//
// Returns:
//   - *Parser[D]: The created parser
//   - error: ErrUnsupportedValueType for a value type outside the closed
//     float32/int32/int64 set
func NewParser[D format.Number](cfg Config) (*Parser[D], error) {
	valueType := format.ValueTypeOf[D]()

	decode, err := decoderFor[D](valueType)
	if err != nil {
		return nil, err
	}

	labelCount := cfg.LabelCount
	if labelCount < 1 {
		labelCount = 1
	}

	weightColumn := -1
	if valueType == format.TypeFloat32 {
		weightColumn = cfg.WeightColumn
	}

	return &Parser[D]{
		cfg:          cfg,
		labelCount:   labelCount,
		weightColumn: weightColumn,
		decode:       decode,
	}, nil
}

// ParseBlock scans the byte range line by line and appends one row per line
// to out. The range must contain complete lines only; splitting a line
// across ranges is the caller's responsibility to avoid.
//
// Prior content of out is never read or modified; use out.Clear between
// unrelated invocations to start a fresh block instead of accumulating.
//
// Returns:
//   - error: ErrDelimiterNotFound when a line ends without the configured
//     delimiter before any feature field was consumed, or ErrBlockCorrupted
//     if the output invariants fail after the parse (a bug, not bad input)
func (p *Parser[D]) ParseBlock(data []byte, out *rowblock.RowBlock[D]) error {
	out.LabelCount = p.labelCount
	if len(out.Offset) == 0 {
		out.Offset = append(out.Offset, 0)
	}

	label := make([]D, p.labelCount)
	end := len(data)

	lbegin := 0
	for lbegin < end && (data[lbegin] == '\n' || data[lbegin] == '\r') {
		lbegin++
	}

	for lbegin < end {
		lbegin = skipBOM(data, lbegin)
		if lbegin >= end {
			break
		}

		lend := lbegin + 1
		for lend < end && data[lend] != '\n' && data[lend] != '\r' {
			lend++
		}

		cursor := lbegin
		columnIndex := 0
		featureSlot := uint32(0)
		sawDelimiter := false
		for i := range label {
			label[i] = 0
		}
		var weight float32
		weightSet := false

		for cursor < lend {
			v, consumed := p.decode(data[cursor:lend])

			if slot, isLabel := p.cfg.LabelColumns[columnIndex]; isLabel {
				label[slot] = v
			} else if columnIndex == p.weightColumn && p.weightColumn >= 0 {
				weight = float32(v)
				weightSet = true
			} else {
				if consumed != 0 {
					out.Value = append(out.Value, v)
					out.Index = append(out.Index, featureSlot)
				}
				// An empty feature field still occupies a slot.
				featureSlot++
			}

			cursor += consumed
			if cursor > lend {
				cursor = lend
			}
			columnIndex++

			for cursor < lend && data[cursor] != p.cfg.Delimiter {
				cursor++
			}
			// Reaching the line end without ever seeing the delimiter
			// usually means the delimiter option does not match the data.
			if cursor == lend && !sawDelimiter {
				return fmt.Errorf("%w: expected %q to separate fields",
					errs.ErrDelimiterNotFound, string(p.cfg.Delimiter))
			}
			if cursor < lend {
				sawDelimiter = true
				cursor++
			}
		}

		for lend < end && (data[lend] == '\n' || data[lend] == '\r') {
			lend++
		}
		lbegin = lend

		out.Label = append(out.Label, label...)
		if weightSet {
			out.Weight = append(out.Weight, weight)
		}
		out.Offset = append(out.Offset, uint64(len(out.Index)))
	}

	return out.Validate()
}

// skipBOM advances past a UTF-8 byte order mark at pos, if present.
func skipBOM(data []byte, pos int) int {
	if pos+3 <= len(data) &&
		data[pos] == utf8BOM[0] && data[pos+1] == utf8BOM[1] && data[pos+2] == utf8BOM[2] {
		return pos + 3
	}

	return pos
}
