// Package section defines the binary layout of a geometry blob.
//
// A blob is a fixed header followed by one payload, optionally compressed as
// a whole:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (24 bytes)                            │
//	│  - Flag (4 bytes): magic, byte order,        │
//	│    compression, dimension                    │
//	│  - OpCount, CoordCount, StructureSize        │
//	│  - Checksum (xxHash64 of the raw payload)    │
//	├──────────────────────────────────────────────┤
//	│ Payload (compressed or not)                  │
//	│  - Structure column: opcodes and operands    │
//	│  - Coordinate column: Dimension float64      │
//	│    values per coordinate                     │
//	└──────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|------------------------------------
//	0-1    | Flag.Options   | uint16 | magic (bits 4-15), endianness (bit 1)
//	2      | Compression    | uint8  | format.CompressionType
//	3      | Dimension      | uint8  | 2 or 3
//	4-7    | OpCount        | uint32 | entries in the structure column
//	8-11   | CoordCount     | uint32 | coordinates in the coordinate column
//	12-15  | StructureSize  | uint32 | structure column length in bytes
//	16-23  | Checksum       | uint64 | xxHash64 of the uncompressed payload
//
// Flag.Options is always little-endian; the endianness bit selects the byte
// order of every other multi-byte field and of the payload.
//
// # Structure Column
//
// Each entry is one Opcode byte, followed by a uint32 operand for coordinate
// runs (the run length) and for begins that carry a size hint. Consecutive
// coordinates of one sequence are folded into a single OpCoords entry.
// Position indices are not stored; a decoder regenerates them from nesting.
package section
