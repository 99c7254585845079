package rowpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/csv"
	"github.com/arloliu/rowpack/errs"
)

func TestParseCSV(t *testing.T) {
	t.Run("features only", func(t *testing.T) {
		block, diags, err := ParseCSV[float32]([]byte("1,2,3\n4,5,6\n"), csv.DefaultParams())
		require.NoError(t, err)
		require.Empty(t, diags)
		require.Equal(t, 2, block.Rows())
		require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, block.Value)
		require.Equal(t, []uint32{0, 1, 2, 0, 1, 2}, block.Index)
	})

	t.Run("label and weight columns", func(t *testing.T) {
		params := csv.DefaultParams()
		params.LabelColumn = "0"
		params.WeightColumn = 1

		block, diags, err := ParseCSV[float32]([]byte("1,0.5,7\n0,0.25,9\n"), params)
		require.NoError(t, err)
		require.Empty(t, diags)
		require.Equal(t, []float32{1, 0}, block.Label)
		require.Equal(t, []float32{0.5, 0.25}, block.Weight)
		require.Equal(t, []float32{7, 9}, block.Value)
	})

	t.Run("diagnostics surfaced", func(t *testing.T) {
		params := csv.DefaultParams()
		params.LabelColumn = "0,0"

		block, diags, err := ParseCSV[float32]([]byte("1,2\n"), params)
		require.NoError(t, err)
		require.Len(t, diags, 1)
		require.Contains(t, diags[0].String(), "duplicate index")
		require.Equal(t, 1, block.Rows())
	})

	t.Run("bad format", func(t *testing.T) {
		params := csv.DefaultParams()
		params.Format = "libsvm"

		_, _, err := ParseCSV[float32]([]byte("1,2\n"), params)
		require.Error(t, err)
	})

	t.Run("missing delimiter", func(t *testing.T) {
		_, _, err := ParseCSV[float32]([]byte("123\n"), csv.DefaultParams())
		require.Error(t, err)
	})
}

func TestPageRoundTrip(t *testing.T) {
	params := csv.DefaultParams()
	params.LabelColumn = "0"

	block, _, err := ParseCSV[float32]([]byte("1,0.5,2.5\n0,,3.5\n1,4.5,5.5\n"), params)
	require.NoError(t, err)

	page, err := MarshalPage(block)
	require.NoError(t, err)

	restored, err := UnmarshalPage[float32](page)
	require.NoError(t, err)
	require.Equal(t, block.LabelCount, restored.LabelCount)
	require.Equal(t, block.Offset, restored.Offset)
	require.Equal(t, block.Index, restored.Index)
	require.Equal(t, block.Value, restored.Value)
	require.Equal(t, block.Label, restored.Label)
	require.Equal(t, block.Weight, restored.Weight)
}

func TestPageRoundTripInt64(t *testing.T) {
	block, _, err := ParseCSV[int64]([]byte("10,0xFF,30\n-40,50,60\n"), csv.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, []int64{10, 255, 30, -40, 50, 60}, block.Value)

	page, err := MarshalPage(block)
	require.NoError(t, err)

	restored, err := UnmarshalPage[int64](page)
	require.NoError(t, err)
	require.Equal(t, block.Value, restored.Value)

	// Decoding under the wrong element type must fail up front.
	_, err = UnmarshalPage[float32](page)
	require.ErrorIs(t, err, errs.ErrValueTypeMismatch)
}
