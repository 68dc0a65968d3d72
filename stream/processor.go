package stream

// Processor consumes a geometry as a sequence of begin, coordinate and end calls.
//
// Every call carries idx, the position of the element inside its immediately
// enclosing sequence. A standalone geometry is reported at idx 0.
//
// The tagged flag on LineString and Polygon calls distinguishes a standalone
// geometry (true) from a part, ring or member of a multi-part container (false).
//
// Implementations return an error to abort the stream; producers stop at the
// first error and return it unchanged.
type Processor interface {
	// MultiDim reports whether the processor wants full coordinates through
	// Coordinate instead of XY.
	MultiDim() bool

	XY(x, y float64, idx int) error
	Coordinate(x, y float64, z, m, t Ordinate, tm Timestamp, idx int) error

	PointBegin(idx int) error
	PointEnd(idx int) error

	MultiPointBegin(size, idx int) error
	MultiPointEnd(idx int) error

	LineStringBegin(tagged bool, size, idx int) error
	LineStringEnd(tagged bool, idx int) error

	MultiLineStringBegin(size, idx int) error
	MultiLineStringEnd(idx int) error

	PolygonBegin(tagged bool, size, idx int) error
	PolygonEnd(tagged bool, idx int) error

	MultiPolygonBegin(size, idx int) error
	MultiPolygonEnd(idx int) error

	GeometryCollectionBegin(size, idx int) error
	GeometryCollectionEnd(idx int) error
}

// Source is anything that can replay itself into a Processor.
type Source interface {
	Process(p Processor) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(p Processor) error

// Process calls f(p).
func (f SourceFunc) Process(p Processor) error {
	return f(p)
}

// Ordinate is an optional coordinate value.
type Ordinate struct {
	Value float64
	Valid bool
}

// Some returns a present Ordinate.
func Some(v float64) Ordinate {
	return Ordinate{Value: v, Valid: true}
}

// None is the absent Ordinate.
var None = Ordinate{}

// Timestamp is an optional integer time measure attached to a coordinate.
type Timestamp struct {
	Value uint64
	Valid bool
}

// NoTimestamp is the absent Timestamp.
var NoTimestamp = Timestamp{}

// NopProcessor accepts every event and does nothing. Embed it to implement
// only the calls a processor cares about.
type NopProcessor struct{}

var _ Processor = NopProcessor{}

func (NopProcessor) MultiDim() bool { return false }
func (NopProcessor) XY(float64, float64, int) error { return nil }
func (NopProcessor) PointBegin(int) error { return nil }
func (NopProcessor) PointEnd(int) error { return nil }
func (NopProcessor) MultiPointBegin(int, int) error { return nil }
func (NopProcessor) MultiPointEnd(int) error { return nil }
func (NopProcessor) LineStringBegin(bool, int, int) error { return nil }
func (NopProcessor) LineStringEnd(bool, int) error { return nil }
func (NopProcessor) MultiLineStringBegin(int, int) error { return nil }
func (NopProcessor) MultiLineStringEnd(int) error { return nil }
func (NopProcessor) PolygonBegin(bool, int, int) error { return nil }
func (NopProcessor) PolygonEnd(bool, int) error { return nil }
func (NopProcessor) MultiPolygonBegin(int, int) error { return nil }
func (NopProcessor) MultiPolygonEnd(int) error { return nil }
func (NopProcessor) GeometryCollectionBegin(int, int) error { return nil }
func (NopProcessor) GeometryCollectionEnd(int) error { return nil }

func (NopProcessor) Coordinate(float64, float64, Ordinate, Ordinate, Ordinate, Timestamp, int) error {
	return nil
}
