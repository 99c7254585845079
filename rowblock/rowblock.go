package rowblock

import (
	"fmt"

	"github.com/arloliu/rowpack/errs"
	"github.com/arloliu/rowpack/format"
)

// RowBlock is the sparse-row container produced by the parsers.
//
// Rows are stored as parallel flat arrays: row r owns the feature entries
// Index[Offset[r]:Offset[r+1]] / Value[Offset[r]:Offset[r+1]], the label
// slots Label[r*LabelCount:(r+1)*LabelCount], and Weight[r] when weights
// are present.
//
// A RowBlock is owned by a single caller. Parsers only append to it; use
// Clear to start a fresh block between unrelated parse calls. Concurrent
// parse calls must each write into their own RowBlock instance.
type RowBlock[D format.Number] struct {
	// LabelCount is the number of label slots per row, always >= 1.
	LabelCount int

	// Offset holds the exclusive end position in Index/Value for each row,
	// with a leading 0, so len(Offset) == rows+1.
	Offset []uint64

	// Label holds rows x LabelCount decoded label values.
	Label []D

	// Index holds the feature identifier of every emitted feature entry.
	Index []uint32

	// Value holds the decoded value of every emitted feature entry.
	Value []D

	// Weight holds per-row instance weights. Either empty (no row in the
	// block carries a weight) or exactly rows entries.
	Weight []float32
}

// New creates an empty RowBlock with a single label slot and the implicit
// leading offset entry in place.
func New[D format.Number]() *RowBlock[D] {
	return &RowBlock[D]{
		LabelCount: 1,
		Offset:     []uint64{0},
	}
}

// Rows returns the number of rows stored in the block.
func (b *RowBlock[D]) Rows() int {
	if len(b.Offset) == 0 {
		return 0
	}

	return len(b.Offset) - 1
}

// Entries returns the number of (index, value) feature entries stored in
// the block.
func (b *RowBlock[D]) Entries() int {
	return len(b.Index)
}

// Clear resets the block to an empty state while retaining allocated
// capacity. LabelCount is preserved.
func (b *RowBlock[D]) Clear() {
	b.Offset = append(b.Offset[:0], 0)
	b.Label = b.Label[:0]
	b.Index = b.Index[:0]
	b.Value = b.Value[:0]
	b.Weight = b.Weight[:0]
}

// Validate checks the cross-array invariants. A violation indicates an
// implementation bug in whatever produced the block, not bad user input.
//
// Returns:
//   - error: ErrBlockCorrupted wrapped with the failing condition, nil when
//     the block is consistent
func (b *RowBlock[D]) Validate() error {
	if b.LabelCount < 1 {
		return fmt.Errorf("%w: label count %d < 1", errs.ErrBlockCorrupted, b.LabelCount)
	}

	if len(b.Label)%b.LabelCount != 0 {
		return fmt.Errorf("%w: label size %d not a multiple of label count %d",
			errs.ErrBlockCorrupted, len(b.Label), b.LabelCount)
	}

	if len(b.Label)/b.LabelCount+1 != len(b.Offset) {
		return fmt.Errorf("%w: %d label rows but %d offsets",
			errs.ErrBlockCorrupted, len(b.Label)/b.LabelCount, len(b.Offset))
	}

	if len(b.Weight) != 0 && len(b.Weight)+1 != len(b.Offset) {
		return fmt.Errorf("%w: %d weights for %d rows",
			errs.ErrBlockCorrupted, len(b.Weight), len(b.Offset)-1)
	}

	if len(b.Index) != len(b.Value) {
		return fmt.Errorf("%w: %d indices but %d values",
			errs.ErrBlockCorrupted, len(b.Index), len(b.Value))
	}

	return nil
}

// Row is a read-only view of one row inside a RowBlock. The slices alias
// the block's arrays and stay valid until the block is cleared.
type Row[D format.Number] struct {
	// Index holds the feature identifiers of the row.
	Index []uint32
	// Value holds the feature values of the row, parallel to Index.
	Value []D
	// Label holds the row's label vector, LabelCount entries.
	Label []D
	// Weight is the row's instance weight, valid only when HasWeight is true.
	Weight float32
	// HasWeight reports whether the block carries weights.
	HasWeight bool
}

// Row returns a view of row r. It panics when r is out of range, matching
// slice indexing semantics.
func (b *RowBlock[D]) Row(r int) Row[D] {
	start := b.Offset[r]
	end := b.Offset[r+1]

	row := Row[D]{
		Index: b.Index[start:end],
		Value: b.Value[start:end],
		Label: b.Label[r*b.LabelCount : (r+1)*b.LabelCount],
	}

	if len(b.Weight) > 0 {
		row.Weight = b.Weight[r]
		row.HasWeight = true
	}

	return row
}
