package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	return []Event{
		{Kind: EventGeometryCollectionBegin, Size: 2},
		{Kind: EventPointBegin},
		{Kind: EventXY, X: 1, Y: 2},
		{Kind: EventPointEnd},
		{Kind: EventPolygonBegin, Tagged: true, Size: 1, Idx: 1},
		{Kind: EventLineStringBegin, Size: 4},
		{Kind: EventCoordinate, X: 0, Y: 0, Z: Some(1), Idx: 0},
		{Kind: EventCoordinate, X: 1, Y: 0, Z: Some(1), Idx: 1},
		{Kind: EventCoordinate, X: 1, Y: 1, Z: Some(1), M: Some(2), TM: Timestamp{Value: 9, Valid: true}, Idx: 2},
		{Kind: EventCoordinate, X: 0, Y: 0, Z: Some(1), Idx: 3},
		{Kind: EventLineStringEnd},
		{Kind: EventPolygonEnd, Tagged: true, Idx: 1},
		{Kind: EventMultiPointBegin, Size: 0},
		{Kind: EventMultiPointEnd},
		{Kind: EventMultiLineStringBegin, Size: 0},
		{Kind: EventMultiLineStringEnd},
		{Kind: EventMultiPolygonBegin, Size: 0},
		{Kind: EventMultiPolygonEnd},
		{Kind: EventGeometryCollectionEnd},
	}
}

func TestRecorder_Replay(t *testing.T) {
	src := &Recorder{Dim: true, Events: sampleEvents()}
	dst := NewRecorder(true)

	require.NoError(t, src.Process(dst))
	if diff := cmp.Diff(src.Events, dst.Events); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorder_Count(t *testing.T) {
	r := &Recorder{Events: sampleEvents()}

	require.Equal(t, 4, r.Count(EventCoordinate))
	require.Equal(t, 1, r.Count(EventXY))
	require.Equal(t, 0, r.Count(EventMultiPointBegin+100))

	r.Reset()
	require.Empty(t, r.Events)
}

func TestRecorder_MultiDim(t *testing.T) {
	require.True(t, NewRecorder(true).MultiDim())
	require.False(t, NewRecorder(false).MultiDim())
}

func TestReplay_UnknownKind(t *testing.T) {
	err := Replay(Event{Kind: 0}, NopProcessor{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown event kind")
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{Kind: EventXY, X: 1, Y: 2.5, Idx: 3}, "XY(1, 2.5, 3)"},
		{Event{Kind: EventCoordinate, X: 1, Y: 2, Z: Some(3)}, "Coordinate(1, 2, 3, 0)"},
		{Event{Kind: EventCoordinate, X: 1, Y: 2, Idx: 1}, "Coordinate(1, 2, -, 1)"},
		{Event{Kind: EventLineStringBegin, Tagged: true, Size: 4}, "LineStringBegin(true, 4, 0)"},
		{Event{Kind: EventPolygonEnd, Idx: 2}, "PolygonEnd(false, 2)"},
		{Event{Kind: EventMultiPointBegin, Size: 3, Idx: 1}, "MultiPointBegin(3, 1)"},
		{Event{Kind: EventPointEnd}, "PointEnd(0)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.event.String())
	}
}

func TestEventKind_String(t *testing.T) {
	require.Equal(t, "GeometryCollectionEnd", EventGeometryCollectionEnd.String())
	require.Equal(t, "Unknown", EventKind(0).String())
	require.Equal(t, "Unknown", EventKind(200).String())
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func(p Processor) error {
		return p.XY(1, 2, 0)
	})

	rec := NewRecorder(false)
	require.NoError(t, src.Process(rec))
	require.Equal(t, []Event{{Kind: EventXY, X: 1, Y: 2}}, rec.Events)
}

func TestOrdinate(t *testing.T) {
	require.Equal(t, Ordinate{Value: 4, Valid: true}, Some(4))
	require.False(t, None.Valid)
	require.False(t, NoTimestamp.Valid)
}
