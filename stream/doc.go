// Package stream defines the event protocol used to move geometries between
// representations.
//
// A producer (a Source) walks a geometry and calls a Processor with a
// bracketed sequence of events:
//
//	PolygonBegin(tagged=true, size=2, idx=0)
//	    LineStringBegin(tagged=false, size=4, idx=0)   // exterior
//	        XY(0, 0, 0) XY(5, 0, 1) XY(5, 5, 2) XY(0, 0, 3)
//	    LineStringEnd(tagged=false, idx=0)
//	    LineStringBegin(tagged=false, size=4, idx=1)   // hole
//	        ...
//	    LineStringEnd(tagged=false, idx=1)
//	PolygonEnd(tagged=true, idx=0)
//
// Rings are always emitted closed. Processors that want the third ordinate
// report MultiDim() == true and receive Coordinate calls instead of XY.
//
// The package also provides small building blocks for processors: NopProcessor
// for embedding, Recorder for capturing and replaying event sequences, and Tee
// for fanning one stream out to two consumers.
package stream
