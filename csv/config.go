package csv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/rowpack/errs"
)

// FormatName is the literal value the "format" option must carry for this
// parser.
const FormatName = "csv"

// labelColumnListDelimiter separates entries of the label column spec. It
// is always a comma, independent of the data delimiter.
const labelColumnListDelimiter = ","

// Params is the raw, user-supplied option bag for the CSV parser, before
// validation.
type Params struct {
	// Format identifies the parser and must equal FormatName.
	Format string
	// LabelColumn is a comma-separated list of input column indices that
	// hold labels. Malformed entries are dropped with a diagnostic.
	LabelColumn string
	// Delimiter separates fields on a line. Only the first byte is used;
	// longer strings are accepted and silently truncated. See the package
	// documentation for the caveat.
	Delimiter string
	// WeightColumn is the input column index holding per-row instance
	// weights, or -1 for none. Weights are only extracted when the parser
	// value type is float32.
	WeightColumn int
}

// DefaultParams returns the parser defaults: comma delimiter, no label
// columns, no weight column.
func DefaultParams() Params {
	return Params{
		Format:       FormatName,
		Delimiter:    ",",
		WeightColumn: -1,
	}
}

// ParamsFromArgs builds Params from a string option map as passed around by
// data loaders. Recognized keys are "format", "label_column", "delimiter"
// and "weight_column"; unrecognized keys are ignored so loader-level
// options can travel in the same map.
func ParamsFromArgs(args map[string]string) (Params, error) {
	params := DefaultParams()

	if v, ok := args["format"]; ok {
		params.Format = v
	}
	if v, ok := args["label_column"]; ok {
		params.LabelColumn = v
	}
	if v, ok := args["delimiter"]; ok {
		params.Delimiter = v
	}
	if v, ok := args["weight_column"]; ok {
		weightColumn, err := strconv.Atoi(v)
		if err != nil {
			return Params{}, fmt.Errorf("invalid weight_column %q: %w", v, err)
		}
		params.WeightColumn = weightColumn
	}

	return params, nil
}

// Diagnostic is a non-fatal configuration warning. Offending entries are
// dropped and resolution continues with the remaining valid ones.
type Diagnostic struct {
	// Option is the option the diagnostic refers to, e.g. "label_column".
	Option string
	// Entry is the offending entry as written by the user.
	Entry string
	// Reason explains why the entry was ignored.
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("ignoring %s entry %q: %s", d.Option, d.Entry, d.Reason)
}

// Config is the resolved, validated column-role configuration. It is
// immutable after Resolve and safe to share across concurrent parser
// calls.
type Config struct {
	// Delimiter is the single field separator byte.
	Delimiter byte
	// LabelColumns maps an input column index to its output label slot.
	LabelColumns map[int]int
	// LabelCount is the number of label slots per row, always >= 1.
	LabelCount int
	// WeightColumn is the weight column index, or -1 for none.
	WeightColumn int
}

// Resolve validates the params and classifies columns into roles.
//
// Returns:
//   - Config: The resolved configuration
//   - []Diagnostic: Warnings for dropped label column entries, possibly empty
//   - error: ErrFormatMismatch, ErrEmptyDelimiter, or
//     ErrWeightLabelCollision; the Config is unusable when non-nil
func (p Params) Resolve() (Config, []Diagnostic, error) {
	if p.Format != FormatName {
		return Config{}, nil, fmt.Errorf("%w: got %q, want %q", errs.ErrFormatMismatch, p.Format, FormatName)
	}

	if len(p.Delimiter) == 0 {
		return Config{}, nil, errs.ErrEmptyDelimiter
	}

	labelColumns, diags := extractLabelColumns(p.LabelColumn)

	labelCount := len(labelColumns)
	if labelCount < 1 {
		labelCount = 1
	}

	if _, collides := labelColumns[p.WeightColumn]; collides {
		return Config{}, diags, fmt.Errorf("%w: column %d", errs.ErrWeightLabelCollision, p.WeightColumn)
	}

	return Config{
		// Only the first byte participates in scanning; multi-byte
		// delimiter strings are truncated without warning.
		Delimiter:    p.Delimiter[0],
		LabelColumns: labelColumns,
		LabelCount:   labelCount,
		WeightColumn: p.WeightColumn,
	}, diags, nil
}

// extractLabelColumns parses the label column spec, assigning output slots
// to accepted entries in encounter order.
func extractLabelColumns(spec string) (map[int]int, []Diagnostic) {
	labelColumns := make(map[int]int)
	if len(spec) == 0 {
		return labelColumns, nil
	}

	var diags []Diagnostic
	warn := func(entry, reason string) {
		diags = append(diags, Diagnostic{Option: "label_column", Entry: entry, Reason: reason})
	}

	entries := strings.Split(spec, labelColumnListDelimiter)
	// A trailing list delimiter does not produce an empty entry.
	if entries[len(entries)-1] == "" && strings.HasSuffix(spec, labelColumnListDelimiter) {
		entries = entries[:len(entries)-1]
	}

	outputIndex := 0
	for _, entry := range entries {
		if entry == "" {
			warn(entry, "missing entry")
			continue
		}

		front := entry[0]
		if !isDigit(front) && front != '-' && front != '+' {
			warn(entry, "non-numeric entry")
			continue
		}

		pos := 1
		for pos < len(entry) && isDigit(entry[pos]) {
			pos++
		}
		if !isDigit(front) && pos == 1 {
			// bare sign with no digits
			warn(entry, "no digits after sign")
			continue
		}
		if pos != len(entry) {
			warn(entry, fmt.Sprintf("unexpected character %q", entry[pos:pos+1]))
			continue
		}

		inputIndex, err := strconv.Atoi(entry)
		if err != nil {
			warn(entry, "out of range")
			continue
		}

		if inputIndex < 0 {
			warn(entry, "negative index")
			continue
		}

		if _, dup := labelColumns[inputIndex]; dup {
			warn(entry, "duplicate index")
			continue
		}

		labelColumns[inputIndex] = outputIndex
		outputIndex++
	}

	return labelColumns, diags
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
