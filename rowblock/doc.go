// Package rowblock provides the sparse row container shared by all rowpack
// parsers, plus a binary page codec for persisting parsed blocks.
//
// # Row blocks
//
// A RowBlock stores rows as parallel flat arrays: feature identifiers and
// values, a fixed-width label vector per row, optional per-row instance
// weights, and row boundary offsets. Parsers append complete rows and the
// container enforces the cross-array invariants with Validate.
//
//	block := rowblock.New[float32]()
//	// ... parser appends rows ...
//	for r := 0; r < block.Rows(); r++ {
//	    row := block.Row(r)
//	    _ = row.Index // sparse feature identifiers
//	    _ = row.Value // feature values
//	    _ = row.Label // label vector
//	}
//
// # Pages
//
// PageEncoder and PageDecoder convert a RowBlock to and from a compact,
// checksummed binary page so a block parsed once can be cached and reloaded
// without touching the source text again:
//
//	encoder, _ := rowblock.NewPageEncoder[float32](
//	    rowblock.WithPageCompression(format.CompressionS2),
//	)
//	page, _ := encoder.Encode(block)
//
//	decoder, _ := rowblock.NewPageDecoder[float32](page)
//	restored, _ := decoder.Decode()
//
// The page layout is defined in the section package. Pages embed the value
// type, so decoding with a mismatched type parameter fails up front rather
// than reinterpreting bytes.
package rowblock
