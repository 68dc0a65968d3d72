package stream

import (
	"fmt"

	"github.com/pkg/errors"
)

// EventKind identifies a Processor call.
type EventKind uint8

const (
	EventXY EventKind = iota + 1
	EventCoordinate
	EventPointBegin
	EventPointEnd
	EventMultiPointBegin
	EventMultiPointEnd
	EventLineStringBegin
	EventLineStringEnd
	EventMultiLineStringBegin
	EventMultiLineStringEnd
	EventPolygonBegin
	EventPolygonEnd
	EventMultiPolygonBegin
	EventMultiPolygonEnd
	EventGeometryCollectionBegin
	EventGeometryCollectionEnd
)

var eventNames = [...]string{
	EventXY:                      "XY",
	EventCoordinate:              "Coordinate",
	EventPointBegin:              "PointBegin",
	EventPointEnd:                "PointEnd",
	EventMultiPointBegin:         "MultiPointBegin",
	EventMultiPointEnd:           "MultiPointEnd",
	EventLineStringBegin:         "LineStringBegin",
	EventLineStringEnd:           "LineStringEnd",
	EventMultiLineStringBegin:    "MultiLineStringBegin",
	EventMultiLineStringEnd:      "MultiLineStringEnd",
	EventPolygonBegin:            "PolygonBegin",
	EventPolygonEnd:              "PolygonEnd",
	EventMultiPolygonBegin:       "MultiPolygonBegin",
	EventMultiPolygonEnd:         "MultiPolygonEnd",
	EventGeometryCollectionBegin: "GeometryCollectionBegin",
	EventGeometryCollectionEnd:   "GeometryCollectionEnd",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) && eventNames[k] != "" {
		return eventNames[k]
	}

	return "Unknown"
}

// Event is one recorded Processor call. Fields that the call does not carry
// are left zero.
type Event struct {
	Kind   EventKind
	Tagged bool
	Size   int
	Idx    int
	X, Y   float64
	Z, M   Ordinate
	T      Ordinate
	TM     Timestamp
}

func (e Event) String() string {
	switch e.Kind {
	case EventXY:
		return fmt.Sprintf("XY(%g, %g, %d)", e.X, e.Y, e.Idx)
	case EventCoordinate:
		if e.Z.Valid {
			return fmt.Sprintf("Coordinate(%g, %g, %g, %d)", e.X, e.Y, e.Z.Value, e.Idx)
		}

		return fmt.Sprintf("Coordinate(%g, %g, -, %d)", e.X, e.Y, e.Idx)
	case EventLineStringBegin, EventPolygonBegin:
		return fmt.Sprintf("%s(%t, %d, %d)", e.Kind, e.Tagged, e.Size, e.Idx)
	case EventLineStringEnd, EventPolygonEnd:
		return fmt.Sprintf("%s(%t, %d)", e.Kind, e.Tagged, e.Idx)
	case EventMultiPointBegin, EventMultiLineStringBegin, EventMultiPolygonBegin, EventGeometryCollectionBegin:
		return fmt.Sprintf("%s(%d, %d)", e.Kind, e.Size, e.Idx)
	default:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Idx)
	}
}

// Recorder is a Processor that stores every call it receives. A Recorder is
// also a Source: Process replays the recorded events in order.
type Recorder struct {
	// Dim is returned by MultiDim.
	Dim    bool
	Events []Event
}

var (
	_ Processor = (*Recorder)(nil)
	_ Source    = (*Recorder)(nil)
)

// NewRecorder returns an empty Recorder reporting multiDim from MultiDim.
func NewRecorder(multiDim bool) *Recorder {
	return &Recorder{Dim: multiDim}
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k EventKind) int {
	n := 0
	for i := range r.Events {
		if r.Events[i].Kind == k {
			n++
		}
	}

	return n
}

func (r *Recorder) add(e Event) error {
	r.Events = append(r.Events, e)
	return nil
}

func (r *Recorder) MultiDim() bool { return r.Dim }

func (r *Recorder) XY(x, y float64, idx int) error {
	return r.add(Event{Kind: EventXY, X: x, Y: y, Idx: idx})
}

func (r *Recorder) Coordinate(x, y float64, z, m, t Ordinate, tm Timestamp, idx int) error {
	return r.add(Event{Kind: EventCoordinate, X: x, Y: y, Z: z, M: m, T: t, TM: tm, Idx: idx})
}

func (r *Recorder) PointBegin(idx int) error {
	return r.add(Event{Kind: EventPointBegin, Idx: idx})
}

func (r *Recorder) PointEnd(idx int) error {
	return r.add(Event{Kind: EventPointEnd, Idx: idx})
}

func (r *Recorder) MultiPointBegin(size, idx int) error {
	return r.add(Event{Kind: EventMultiPointBegin, Size: size, Idx: idx})
}

func (r *Recorder) MultiPointEnd(idx int) error {
	return r.add(Event{Kind: EventMultiPointEnd, Idx: idx})
}

func (r *Recorder) LineStringBegin(tagged bool, size, idx int) error {
	return r.add(Event{Kind: EventLineStringBegin, Tagged: tagged, Size: size, Idx: idx})
}

func (r *Recorder) LineStringEnd(tagged bool, idx int) error {
	return r.add(Event{Kind: EventLineStringEnd, Tagged: tagged, Idx: idx})
}

func (r *Recorder) MultiLineStringBegin(size, idx int) error {
	return r.add(Event{Kind: EventMultiLineStringBegin, Size: size, Idx: idx})
}

func (r *Recorder) MultiLineStringEnd(idx int) error {
	return r.add(Event{Kind: EventMultiLineStringEnd, Idx: idx})
}

func (r *Recorder) PolygonBegin(tagged bool, size, idx int) error {
	return r.add(Event{Kind: EventPolygonBegin, Tagged: tagged, Size: size, Idx: idx})
}

func (r *Recorder) PolygonEnd(tagged bool, idx int) error {
	return r.add(Event{Kind: EventPolygonEnd, Tagged: tagged, Idx: idx})
}

func (r *Recorder) MultiPolygonBegin(size, idx int) error {
	return r.add(Event{Kind: EventMultiPolygonBegin, Size: size, Idx: idx})
}

func (r *Recorder) MultiPolygonEnd(idx int) error {
	return r.add(Event{Kind: EventMultiPolygonEnd, Idx: idx})
}

func (r *Recorder) GeometryCollectionBegin(size, idx int) error {
	return r.add(Event{Kind: EventGeometryCollectionBegin, Size: size, Idx: idx})
}

func (r *Recorder) GeometryCollectionEnd(idx int) error {
	return r.add(Event{Kind: EventGeometryCollectionEnd, Idx: idx})
}

// Process replays the recorded events into p and stops at the first error.
func (r *Recorder) Process(p Processor) error {
	for i := range r.Events {
		if err := Replay(r.Events[i], p); err != nil {
			return err
		}
	}

	return nil
}

// Replay sends a single event to p.
func Replay(e Event, p Processor) error {
	switch e.Kind {
	case EventXY:
		return p.XY(e.X, e.Y, e.Idx)
	case EventCoordinate:
		return p.Coordinate(e.X, e.Y, e.Z, e.M, e.T, e.TM, e.Idx)
	case EventPointBegin:
		return p.PointBegin(e.Idx)
	case EventPointEnd:
		return p.PointEnd(e.Idx)
	case EventMultiPointBegin:
		return p.MultiPointBegin(e.Size, e.Idx)
	case EventMultiPointEnd:
		return p.MultiPointEnd(e.Idx)
	case EventLineStringBegin:
		return p.LineStringBegin(e.Tagged, e.Size, e.Idx)
	case EventLineStringEnd:
		return p.LineStringEnd(e.Tagged, e.Idx)
	case EventMultiLineStringBegin:
		return p.MultiLineStringBegin(e.Size, e.Idx)
	case EventMultiLineStringEnd:
		return p.MultiLineStringEnd(e.Idx)
	case EventPolygonBegin:
		return p.PolygonBegin(e.Tagged, e.Size, e.Idx)
	case EventPolygonEnd:
		return p.PolygonEnd(e.Tagged, e.Idx)
	case EventMultiPolygonBegin:
		return p.MultiPolygonBegin(e.Size, e.Idx)
	case EventMultiPolygonEnd:
		return p.MultiPolygonEnd(e.Idx)
	case EventGeometryCollectionBegin:
		return p.GeometryCollectionBegin(e.Size, e.Idx)
	case EventGeometryCollectionEnd:
		return p.GeometryCollectionEnd(e.Idx)
	default:
		return errors.Errorf("replay: unknown event kind %d", e.Kind)
	}
}
