package turtls

import (
	"fmt"
	"log"
)

// Callback observes every character after its effect has been applied.
// The state is a snapshot; mutating it does not affect the run.
// Returning true stops processing, like the halt character.
type Callback func(c byte, s *State) bool

// Options configures a single interpreter run. Build it with
// DefaultOptions and override fields as needed; the zero value fails
// validation.
type Options struct {
	// Turtle setup.
	Angle     float64
	Length    float64
	Thickness float64
	Position  Point
	Heading   float64
	// Scale multiplies Length, Position and LengthIncrement; its
	// absolute value multiplies Thickness and ThicknessIncrement.
	Scale float64
	// Circle is the number of heading units in a full circle. 360 for
	// degrees, 2*pi to work in radians.
	Circle float64

	// Color is palette slot 0 and Fill slot 1, nil to hide lines or
	// fills. When Colors is non-nil it overrides both, see MakePalette.
	Color  *RGB
	Fill   *RGB
	Colors []*RGB

	// Prefix and Suffix are joined around the expanded string without
	// undergoing expansion themselves.
	Prefix string
	Suffix string

	// Increments applied by the corresponding instructions.
	AngleIncrement     float64
	LengthIncrement    float64
	LengthScalar       float64
	ThicknessIncrement float64
	RedIncrement       float64
	GreenIncrement     float64
	BlueIncrement      float64

	// MaxChars and MaxDraws halt the run when reached; 0 means no
	// limit. Negative values are rejected by validation.
	MaxChars int
	MaxDraws int

	// PolygonStartDraws makes '{' count as a draw operation in
	// addition to '}', '@' and the uppercase letters.
	PolygonStartDraws bool

	Callback Callback

	// Silent suppresses the warnings logged for collaborator failures.
	Silent bool
}

func DefaultOptions() Options {
	return Options{
		Angle:              90,
		Length:             10,
		Thickness:          1,
		Scale:              1,
		Circle:             360,
		Color:              C(255, 255, 255),
		Fill:               C(128, 128, 128),
		AngleIncrement:     15,
		LengthIncrement:    5,
		LengthScalar:       2,
		ThicknessIncrement: 1,
		RedIncrement:       1,
		GreenIncrement:     1,
		BlueIncrement:      1,
	}
}

func (o *Options) validate() error {
	if o.MaxChars < 0 {
		return fmt.Errorf("turtls: MaxChars must be non-negative, got %d", o.MaxChars)
	}
	if o.MaxDraws < 0 {
		return fmt.Errorf("turtls: MaxDraws must be non-negative, got %d", o.MaxDraws)
	}
	if o.Circle <= 0 {
		return fmt.Errorf("turtls: Circle must be positive, got %v", o.Circle)
	}
	if o.LengthScalar == 0 {
		return fmt.Errorf("turtls: LengthScalar must be non-zero")
	}
	return nil
}

func (o *Options) message(args ...interface{}) {
	if !o.Silent {
		log.Println(args...)
	}
}
