package compress

// ZstdCompressor compresses page payloads with Zstandard.
//
// This is the default codec for persisted row pages: parsed blocks are
// written once and reread many times, so the better ratio pays for the
// slower compression. Two implementations exist behind build tags: the cgo
// build uses gozstd, the pure-Go build uses klauspost/compress/zstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
