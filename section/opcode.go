package section

// Opcode identifies one entry of the structure column.
//
// Coordinate runs and every begin except PointBegin are followed by a uint32
// operand: the run length or the size hint of the container. The tagged bit
// is only valid on LineString and Polygon opcodes.
type Opcode uint8

const (
	OpCoords Opcode = iota + 1
	OpPointBegin
	OpPointEnd
	OpMultiPointBegin
	OpMultiPointEnd
	OpLineStringBegin
	OpLineStringEnd
	OpMultiLineStringBegin
	OpMultiLineStringEnd
	OpPolygonBegin
	OpPolygonEnd
	OpMultiPolygonBegin
	OpMultiPolygonEnd
	OpGeometryCollectionBegin
	OpGeometryCollectionEnd

	opLast = OpGeometryCollectionEnd
)

// TaggedBit marks a standalone LineString or Polygon.
const TaggedBit Opcode = 0x80

var opNames = [...]string{
	OpCoords:                  "Coords",
	OpPointBegin:              "PointBegin",
	OpPointEnd:                "PointEnd",
	OpMultiPointBegin:         "MultiPointBegin",
	OpMultiPointEnd:           "MultiPointEnd",
	OpLineStringBegin:         "LineStringBegin",
	OpLineStringEnd:           "LineStringEnd",
	OpMultiLineStringBegin:    "MultiLineStringBegin",
	OpMultiLineStringEnd:      "MultiLineStringEnd",
	OpPolygonBegin:            "PolygonBegin",
	OpPolygonEnd:              "PolygonEnd",
	OpMultiPolygonBegin:       "MultiPolygonBegin",
	OpMultiPolygonEnd:         "MultiPolygonEnd",
	OpGeometryCollectionBegin: "GeometryCollectionBegin",
	OpGeometryCollectionEnd:   "GeometryCollectionEnd",
}

// Tag returns o with the tagged bit set when tagged is true.
func (o Opcode) Tag(tagged bool) Opcode {
	if tagged {
		return o | TaggedBit
	}

	return o
}

// Base returns o without the tagged bit.
func (o Opcode) Base() Opcode {
	return o &^ TaggedBit
}

// IsTagged reports whether the tagged bit is set.
func (o Opcode) IsTagged() bool {
	return o&TaggedBit != 0
}

// IsBegin reports whether o opens a geometry or a part.
func (o Opcode) IsBegin() bool {
	b := o.Base()
	return b >= OpPointBegin && b <= opLast && b%2 == 0
}

// IsEnd reports whether o closes a geometry or a part.
func (o Opcode) IsEnd() bool {
	b := o.Base()
	return b >= OpPointBegin && b <= opLast && b%2 == 1
}

// HasOperand reports whether o is followed by a uint32 operand.
func (o Opcode) HasOperand() bool {
	b := o.Base()
	return b == OpCoords || (o.IsBegin() && b != OpPointBegin)
}

// Valid reports whether o is a known opcode with a legal tagged bit.
func (o Opcode) Valid() bool {
	b := o.Base()
	if b < OpCoords || b > opLast {
		return false
	}
	if !o.IsTagged() {
		return true
	}

	switch b { //nolint: exhaustive
	case OpLineStringBegin, OpLineStringEnd, OpPolygonBegin, OpPolygonEnd:
		return true
	default:
		return false
	}
}

func (o Opcode) String() string {
	if !o.Valid() {
		return "Unknown"
	}
	if o.IsTagged() {
		return opNames[o.Base()] + "(tagged)"
	}

	return opNames[o]
}
