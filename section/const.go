package section

const (
	// Bit masks of ColumnFlag.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicColumnV1Opt identifies version 1 of the column blob format.
	MagicColumnV1Opt = 0xEC10
)

// Byte layout of the column blob header.
const (
	HeaderSize = 32 // fixed header size in bytes

	optionsOffset     = 0  // 2 bytes, always little-endian
	typeOffset        = 2  // 1 byte
	compressionOffset = 3  // 1 byte
	featureIDOffset   = 4  // 4 bytes
	countOffset       = 8  // 4 bytes
	bitsPerKeyOffset  = 12 // 1 byte, 13-15 reserved
	checksumOffset    = 16 // 8 bytes
	rawSizeOffset     = 24 // 4 bytes
	storedSizeOffset  = 28 // 4 bytes
)
