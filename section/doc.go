// Package section defines the binary layout of the row page format.
//
// A row page persists one parsed row block so it can be reloaded without
// reparsing the source text. The layout is:
//
//	+----------------+  offset 0
//	| PageHeader     |  40 bytes, fixed
//	+----------------+  offset 40
//	| offset payload |  (rows+1) x uint64, compressed
//	+----------------+
//	| index payload  |  entries x uint32, compressed
//	+----------------+
//	| value payload  |  entries x value size, compressed
//	+----------------+
//	| label payload  |  rows x labelCount x value size, compressed
//	+----------------+
//	| weight payload |  0 or rows x float32, compressed
//	+----------------+
//	| checksum       |  8 bytes, xxHash64 of everything above
//	+----------------+
//
// The header starts with a packed flag word carrying the magic number
// (0xEC10), the endianness bit, the value type and the compression type.
// The remaining header fields record row/entry/label counts and the
// compressed size of each payload section, which is all a decoder needs to
// slice the page without scanning it.
package section
