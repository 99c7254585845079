package csv

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/rowpack/rowblock"
)

// genLines builds rows x cols of float text with a leading label column.
func genLines(rows, cols int) []byte {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		fmt.Fprintf(&sb, "%d", r%2)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&sb, ",%d.%d", r, c)
		}
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

func BenchmarkParseBlock(b *testing.B) {
	testCases := []struct {
		name string
		rows int
		cols int
	}{
		{"100rows_10cols", 100, 10},
		{"1000rows_10cols", 1000, 10},
		{"1000rows_100cols", 1000, 100},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			data := genLines(tc.rows, tc.cols)

			params := DefaultParams()
			params.LabelColumn = "0"
			cfg, _, err := params.Resolve()
			if err != nil {
				b.Fatal(err)
			}

			parser, err := NewParser[float32](cfg)
			if err != nil {
				b.Fatal(err)
			}

			block := rowblock.New[float32]()

			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				block.Clear()
				if err := parser.ParseBlock(data, block); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeFloat32(b *testing.B) {
	inputs := [][]byte{
		[]byte("0"),
		[]byte("3.14159"),
		[]byte("-2.5e-3"),
		[]byte("123456.789"),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for _, in := range inputs {
			_, _ = decodeFloat32(in)
		}
	}
}
