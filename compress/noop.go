package compress

// NoOpCompressor bypasses data without compression.
//
// Useful when the page payloads are small enough that codec overhead costs
// more than the saved bytes, and as a baseline for benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers must not modify the input data while the returned slice is in use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers must not modify the input data while the returned slice is in use.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
