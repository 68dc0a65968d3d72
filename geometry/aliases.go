package geometry

// Two-dimensional geometries.
type (
	Geometry2           = Geometry[Coord2]
	MultiPoint2         = MultiPoint[Coord2]
	LineString2         = LineString[Coord2]
	MultiLineString2    = MultiLineString[Coord2]
	Polygon2            = Polygon[Coord2]
	MultiPolygon2       = MultiPolygon[Coord2]
	GeometryCollection2 = GeometryCollection[Coord2]
	Builder2            = Builder[Coord2]
)

// Three-dimensional geometries.
type (
	Geometry3           = Geometry[Coord3]
	MultiPoint3         = MultiPoint[Coord3]
	LineString3         = LineString[Coord3]
	MultiLineString3    = MultiLineString[Coord3]
	Polygon3            = Polygon[Coord3]
	MultiPolygon3       = MultiPolygon[Coord3]
	GeometryCollection3 = GeometryCollection[Coord3]
	Builder3            = Builder[Coord3]
)
