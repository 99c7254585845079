package section

const (
	// Bit masks for the packed options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicPageV1Opt is the version 1 magic number for the row page format.
	MagicPageV1Opt = 0xEC10

	// Endianness flag values for bit 0
	FlagBigEndian = 0x0001 // 0=little-endian, 1=big-endian
)

// offsets and section sizes in the page
const (
	HeaderSize   = 40 // fixed page header size in bytes
	ChecksumSize = 8  // trailing xxHash64 checksum size in bytes

	// MinPageSize is the smallest well-formed page: header plus checksum.
	MinPageSize = HeaderSize + ChecksumSize
)
