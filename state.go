package turtls

// Point is a position in turtle coordinates: origin at the center,
// x growing rightward, y growing upward.
type Point struct {
	X, Y float64
}

// State is the turtle's live execution context. Colors are nullable: a
// nil PenColor hides lines, a nil FillColor hides polygons and dots.
// Heading and Angle are measured in units of the run's full-circle
// value (degrees by default).
type State struct {
	Position   Point
	Heading    float64
	Angle      float64
	Length     float64
	Thickness  float64
	PenColor   *RGB
	FillColor  *RGB
	SwapSigns  bool
	SwapCases  bool
	ModifyFill bool
}
