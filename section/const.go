package section

const (
	// Bit masks of Flag.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicGeometryV1 identifies version 1 of the geometry blob format.
	MagicGeometryV1 = 0xEC10
)

// Sizes and limits of the blob layout.
const (
	HeaderSize   = 24 // fixed header size in bytes
	OperandSize  = 4  // size of the uint32 operand following some opcodes
	ValueSize    = 8  // size of one stored float64 ordinate
	MinDimension = 2  // x, y
	MaxDimension = 3  // x, y, z
)
