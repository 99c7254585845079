package rowblock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/errs"
)

// appendRow is a test helper that appends one consistent row.
func appendRow(b *RowBlock[float32], labels []float32, indices []uint32, values []float32) {
	b.Label = append(b.Label, labels...)
	b.Index = append(b.Index, indices...)
	b.Value = append(b.Value, values...)
	b.Offset = append(b.Offset, uint64(len(b.Index)))
}

func TestRowBlock_New(t *testing.T) {
	b := New[float32]()
	require.Equal(t, 1, b.LabelCount)
	require.Equal(t, []uint64{0}, b.Offset)
	require.Equal(t, 0, b.Rows())
	require.Equal(t, 0, b.Entries())
	require.NoError(t, b.Validate())
}

func TestRowBlock_RowsAndEntries(t *testing.T) {
	b := New[float32]()
	appendRow(b, []float32{1}, []uint32{0, 1}, []float32{10, 20})
	appendRow(b, []float32{0}, []uint32{0}, []float32{30})

	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Entries())
	require.NoError(t, b.Validate())
}

func TestRowBlock_Row(t *testing.T) {
	b := New[float32]()
	b.LabelCount = 2
	b.Label = append(b.Label, 5, 6)
	b.Index = append(b.Index, 0, 1)
	b.Value = append(b.Value, 1.5, 2.5)
	b.Offset = append(b.Offset, 2)
	b.Label = append(b.Label, 7, 8)
	b.Offset = append(b.Offset, 2)
	require.NoError(t, b.Validate())

	row0 := b.Row(0)
	require.Equal(t, []uint32{0, 1}, row0.Index)
	require.Equal(t, []float32{1.5, 2.5}, row0.Value)
	require.Equal(t, []float32{5, 6}, row0.Label)
	require.False(t, row0.HasWeight)

	row1 := b.Row(1)
	require.Empty(t, row1.Index)
	require.Equal(t, []float32{7, 8}, row1.Label)

	require.Panics(t, func() { b.Row(2) })
}

func TestRowBlock_RowWithWeight(t *testing.T) {
	b := New[float32]()
	appendRow(b, []float32{1}, []uint32{0}, []float32{2})
	b.Weight = append(b.Weight, 0.25)
	require.NoError(t, b.Validate())

	row := b.Row(0)
	require.True(t, row.HasWeight)
	require.Equal(t, float32(0.25), row.Weight)
}

func TestRowBlock_Clear(t *testing.T) {
	b := New[int64]()
	b.LabelCount = 3
	b.Label = append(b.Label, 1, 2, 3)
	b.Index = append(b.Index, 0)
	b.Value = append(b.Value, 9)
	b.Weight = append(b.Weight, 1)
	b.Offset = append(b.Offset, 1)

	b.Clear()
	require.Equal(t, 3, b.LabelCount)
	require.Equal(t, []uint64{0}, b.Offset)
	require.Empty(t, b.Label)
	require.Empty(t, b.Index)
	require.Empty(t, b.Value)
	require.Empty(t, b.Weight)
	require.NoError(t, b.Validate())
}

func TestRowBlock_ValidateFailures(t *testing.T) {
	t.Run("label count below one", func(t *testing.T) {
		b := New[float32]()
		b.LabelCount = 0
		require.ErrorIs(t, b.Validate(), errs.ErrBlockCorrupted)
	})

	t.Run("label size not multiple of label count", func(t *testing.T) {
		b := New[float32]()
		b.LabelCount = 2
		b.Label = append(b.Label, 1)
		require.ErrorIs(t, b.Validate(), errs.ErrBlockCorrupted)
	})

	t.Run("offset count mismatch", func(t *testing.T) {
		b := New[float32]()
		b.Label = append(b.Label, 1, 2)
		b.Offset = append(b.Offset, 0)
		require.ErrorIs(t, b.Validate(), errs.ErrBlockCorrupted)
	})

	t.Run("partial weights", func(t *testing.T) {
		b := New[float32]()
		appendRow(b, []float32{0}, nil, nil)
		appendRow(b, []float32{0}, nil, nil)
		b.Weight = append(b.Weight, 0.5)
		require.ErrorIs(t, b.Validate(), errs.ErrBlockCorrupted)
	})

	t.Run("index value length mismatch", func(t *testing.T) {
		b := New[float32]()
		appendRow(b, []float32{0}, []uint32{0}, []float32{1})
		b.Value = b.Value[:0]
		require.ErrorIs(t, b.Validate(), errs.ErrBlockCorrupted)
	})
}
