// Package csv parses delimited text records into sparse row blocks.
//
// The parser consumes caller-owned byte ranges holding complete lines and
// appends per-row feature (index, value) pairs, label vectors, optional
// instance weights and row offsets into a rowblock.RowBlock. Columns are
// classified into three disjoint roles - label, weight or feature - by a
// configuration resolved once up front:
//
//	params := csv.DefaultParams()
//	params.LabelColumn = "0"
//	params.WeightColumn = 3
//
//	cfg, diags, err := params.Resolve()
//	if err != nil {
//	    return err
//	}
//	for _, d := range diags {
//	    log.Println(d) // dropped label_column entries, non-fatal
//	}
//
//	parser, err := csv.NewParser[float32](cfg)
//	if err != nil {
//	    return err
//	}
//	block := rowblock.New[float32]()
//	if err := parser.ParseBlock(data, block); err != nil {
//	    return err
//	}
//
// Feature columns receive synthetic sequential identifiers assigned by
// per-row position among non-role columns, restarting at 0 on every row;
// the input never carries explicit feature indices. Empty feature fields
// advance the identifier without emitting an entry.
//
// Values decode with C-scanner semantics: the leading numeric prefix of a
// field is consumed and the rest ignored, floats in base 10 and integers
// with base auto-detection (0x hex, leading 0 octal). A field with no
// numeric prefix is treated as empty, not malformed.
//
// The Delimiter option accepts an arbitrary string but only its first byte
// is used for scanning; longer values are truncated without a warning.
// This matches the long-standing documented behavior that existing
// configurations depend on.
//
// Parsing is a pure CPU-bound transformation: many goroutines may call
// ParseBlock concurrently on disjoint ranges, each with its own output
// block, sharing one Config and one Parser.
package csv
