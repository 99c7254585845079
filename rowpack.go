// Package rowpack converts delimited text records into an in-memory sparse
// row representation for numerical learning pipelines, and persists parsed
// blocks as compact binary pages.
//
// # Core pieces
//
//   - csv: the delimited-text parser with declarative column roles
//     (label, weight, feature)
//   - rowblock: the sparse row container and its binary page codec
//   - format: value type and compression type tags
//
// # Basic Usage
//
// Parsing CSV text into a row block:
//
//	import "github.com/arloliu/rowpack"
//
//	params := csv.DefaultParams()
//	params.LabelColumn = "0"
//
//	block, diags, err := rowpack.ParseCSV[float32](data, params)
//	if err != nil {
//	    return err
//	}
//	for _, d := range diags {
//	    log.Println(d)
//	}
//
// Caching a parsed block as a binary page and restoring it:
//
//	page, _ := rowpack.MarshalPage(block)
//	restored, _ := rowpack.UnmarshalPage[float32](page)
//
// This package provides convenient top-level wrappers around the csv and
// rowblock packages, simplifying the most common use cases. For advanced
// usage (accumulating blocks across byte ranges, custom page compression,
// big-endian pages), use those packages directly.
package rowpack

import (
	"github.com/arloliu/rowpack/csv"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/rowblock"
)

// ParseCSV resolves params, parses one byte range and returns the resulting
// block along with any configuration diagnostics.
//
// Parameters:
//   - data: Byte range holding complete delimited lines
//   - params: Raw CSV parser options
//
// Returns:
//   - *rowblock.RowBlock[D]: The parsed block
//   - []csv.Diagnostic: Non-fatal warnings from configuration resolution
//   - error: Configuration or parse errors
func ParseCSV[D format.Number](data []byte, params csv.Params) (*rowblock.RowBlock[D], []csv.Diagnostic, error) {
	cfg, diags, err := params.Resolve()
	if err != nil {
		return nil, diags, err
	}

	parser, err := csv.NewParser[D](cfg)
	if err != nil {
		return nil, diags, err
	}

	block := rowblock.New[D]()
	if err := parser.ParseBlock(data, block); err != nil {
		return nil, diags, err
	}

	return block, diags, nil
}

// MarshalPage encodes a block into a binary page with the default settings
// (little-endian, zstd compression).
func MarshalPage[D format.Number](block *rowblock.RowBlock[D]) ([]byte, error) {
	encoder, err := rowblock.NewPageEncoder[D]()
	if err != nil {
		return nil, err
	}

	return encoder.Encode(block)
}

// UnmarshalPage decodes a binary page back into a row block, verifying its
// checksum and value type.
func UnmarshalPage[D format.Number](page []byte) (*rowblock.RowBlock[D], error) {
	decoder, err := rowblock.NewPageDecoder[D](page)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
