package turtls

import (
	"math"
)

// DrawOp records one draw operation: an uppercase move, a finished
// polygon, a dot, or a polygon start when that policy is enabled.
// Animated export keys frames to these, not to raw character indices.
type DrawOp struct {
	Index int  // character index in the input string
	Char  byte // character after case swapping
}

// Result is what a run leaves behind: the final turtle state, the
// number of draw operations and the ordered record of where they
// happened.
type Result struct {
	State State
	Draws int
	Ops   []DrawOp
}

type machine struct {
	opts    *Options
	surf    Surface
	palette Palette

	pos     Point
	heading float64

	angle     float64
	length    float64
	thickness float64

	initPos       Point
	initHeading   float64
	initAngle     float64
	initLength    float64
	initThickness float64

	lengthIncrement    float64
	thicknessIncrement float64

	pen        *RGB
	fill       *RGB
	swapSigns  bool
	swapCases  bool
	modifyFill bool

	stack      []State
	poly       []Point
	polyActive bool

	draws  int
	ops    []DrawOp
	idx    int
	halted bool
}

// dispatch maps each instruction character to its handler. Characters
// with a nil entry are ignored.
var dispatch [256]func(*machine, byte)

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		dispatch[c] = (*machine).drawMove
	}
	for c := 'a'; c <= 'z'; c++ {
		dispatch[c] = (*machine).flyMove
	}
	for c := '0'; c <= '9'; c++ {
		dispatch[c] = (*machine).selectColor
	}
	dispatch['+'] = func(m *machine, _ byte) { m.turn(1) }
	dispatch['-'] = func(m *machine, _ byte) { m.turn(-1) }
	dispatch['&'] = func(m *machine, _ byte) { m.swapSigns = !m.swapSigns }
	dispatch['|'] = func(m *machine, _ byte) { m.heading -= m.opts.Circle / 2 }
	dispatch['~'] = func(m *machine, _ byte) { m.angle = m.initAngle }
	dispatch[')'] = func(m *machine, _ byte) { m.angle += m.opts.AngleIncrement }
	dispatch['('] = func(m *machine, _ byte) { m.angle -= m.opts.AngleIncrement }
	dispatch['_'] = func(m *machine, _ byte) { m.length = m.initLength }
	dispatch['^'] = func(m *machine, _ byte) { m.length += m.lengthIncrement }
	dispatch['%'] = func(m *machine, _ byte) { m.length -= m.lengthIncrement }
	dispatch['*'] = func(m *machine, _ byte) { m.length *= m.opts.LengthScalar }
	dispatch['/'] = func(m *machine, _ byte) { m.length /= m.opts.LengthScalar }
	dispatch['='] = func(m *machine, _ byte) { m.thickness = m.initThickness }
	dispatch['>'] = func(m *machine, _ byte) { m.thickness = math.Max(0, m.thickness+m.thicknessIncrement) }
	dispatch['<'] = func(m *machine, _ byte) { m.thickness = math.Max(0, m.thickness-m.thicknessIncrement) }
	dispatch['#'] = func(m *machine, _ byte) { m.modifyFill = true }
	dispatch[','] = func(m *machine, _ byte) { m.incChannel(0, m.opts.RedIncrement) }
	dispatch['.'] = func(m *machine, _ byte) { m.incChannel(0, -m.opts.RedIncrement) }
	dispatch[';'] = func(m *machine, _ byte) { m.incChannel(1, m.opts.GreenIncrement) }
	dispatch[':'] = func(m *machine, _ byte) { m.incChannel(1, -m.opts.GreenIncrement) }
	dispatch['?'] = func(m *machine, _ byte) { m.incChannel(2, m.opts.BlueIncrement) }
	dispatch['!'] = func(m *machine, _ byte) { m.incChannel(2, -m.opts.BlueIncrement) }
	dispatch['`'] = func(m *machine, _ byte) { m.swapCases = !m.swapCases }
	dispatch['"'] = func(m *machine, _ byte) { m.moveTo(m.initPos) }
	dispatch['\''] = func(m *machine, _ byte) { m.heading = m.initHeading }
	dispatch['{'] = (*machine).beginPolygon
	dispatch['}'] = (*machine).endPolygon
	dispatch['@'] = (*machine).dot
	dispatch['['] = (*machine).push
	dispatch[']'] = (*machine).pop
	dispatch['$'] = func(m *machine, _ byte) { m.stack = m.stack[:0] }
	dispatch['\\'] = func(m *machine, _ byte) { m.halted = true }
}

// Run executes the L-system string character by character against surf,
// returning the final turtle state and the draw-operation record.
// Unrecognized characters are ignored. The only mid-stream stops are
// the halt character, a true-returning callback and the MaxChars and
// MaxDraws limits; execution-time conditions like popping an empty
// stack or mutating a nil color are silent no-ops.
func Run(s string, opts Options, surf Surface) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if surf == nil {
		surf = NopSurface{}
	}
	m := newMachine(&opts, surf)
	for i := 0; i < len(s); i++ {
		if opts.MaxChars > 0 && i >= opts.MaxChars {
			break
		}
		if opts.MaxDraws > 0 && m.draws >= opts.MaxDraws {
			break
		}
		c := s[i]
		if m.swapCases {
			c = swapCase(c)
		}
		m.idx = i
		if handler := dispatch[c]; handler != nil {
			handler(m, c)
		}
		stop := false
		if opts.Callback != nil {
			snapshot := m.snapshot()
			stop = opts.Callback(c, &snapshot)
		}
		if stop || m.halted {
			break
		}
	}
	return Result{State: m.snapshot(), Draws: m.draws, Ops: m.ops}, nil
}

func newMachine(opts *Options, surf Surface) *machine {
	scale := opts.Scale
	pos := Point{X: scale * opts.Position.X, Y: scale * opts.Position.Y}
	m := &machine{
		opts:    opts,
		surf:    surf,
		palette: MakePalette(opts.Color, opts.Fill, opts.Colors),

		pos:     pos,
		heading: opts.Heading,

		angle:     opts.Angle,
		length:    scale * opts.Length,
		thickness: math.Abs(scale) * math.Max(0, opts.Thickness),

		lengthIncrement:    scale * opts.LengthIncrement,
		thicknessIncrement: math.Abs(scale) * opts.ThicknessIncrement,
	}
	m.initPos = m.pos
	m.initHeading = m.heading
	m.initAngle = m.angle
	m.initLength = m.length
	m.initThickness = m.thickness
	m.pen = m.palette[0]
	m.fill = m.palette[1]
	return m
}

func (m *machine) snapshot() State {
	return State{
		Position:   m.pos,
		Heading:    m.heading,
		Angle:      m.angle,
		Length:     m.length,
		Thickness:  m.thickness,
		PenColor:   m.pen,
		FillColor:  m.fill,
		SwapSigns:  m.swapSigns,
		SwapCases:  m.swapCases,
		ModifyFill: m.modifyFill,
	}
}

func (m *machine) drew(c byte) {
	m.draws++
	m.ops = append(m.ops, DrawOp{Index: m.idx, Char: c})
}

func (m *machine) forwardPoint() Point {
	radians := m.heading / m.opts.Circle * 2 * math.Pi
	return Point{
		X: m.pos.X + m.length*math.Cos(radians),
		Y: m.pos.Y + m.length*math.Sin(radians),
	}
}

// moveTo relocates the turtle without drawing a line. Position changes
// inside an open polygon still contribute vertices.
func (m *machine) moveTo(p Point) {
	m.pos = p
	if m.polyActive {
		m.poly = append(m.poly, p)
	}
}

func (m *machine) drawMove(c byte) {
	next := m.forwardPoint()
	if m.pen != nil && m.thickness > 0 {
		m.surf.Line(m.pos, next, m.thickness, *m.pen)
	}
	m.moveTo(next)
	m.drew(c)
}

func (m *machine) flyMove(byte) {
	m.moveTo(m.forwardPoint())
}

func (m *machine) turn(sign float64) {
	if m.swapSigns {
		sign = -sign
	}
	m.heading += sign * m.angle
}

func (m *machine) selectColor(c byte) {
	slot := m.palette[c-'0']
	if slot == nil {
		m.setColor(nil)
		return
	}
	chosen := *slot
	m.setColor(&chosen)
}

// setColor assigns the pen color, or the fill color when the
// modify-fill flag is set, consuming the flag.
func (m *machine) setColor(c *RGB) {
	if m.modifyFill {
		m.modifyFill = false
		m.fill = c
	} else {
		m.pen = c
	}
}

func (m *machine) incChannel(channel int, delta float64) {
	target := m.pen
	if m.modifyFill {
		target = m.fill
	}
	if target == nil {
		return
	}
	next := *target
	switch channel {
	case 0:
		next.R = clamp(next.R + delta)
	case 1:
		next.G = clamp(next.G + delta)
	case 2:
		next.B = clamp(next.B + delta)
	}
	m.setColor(&next)
}

func (m *machine) beginPolygon(c byte) {
	if m.fill != nil {
		m.polyActive = true
		m.poly = m.poly[:0]
		m.poly = append(m.poly, m.pos)
	}
	if m.opts.PolygonStartDraws {
		m.drew(c)
	}
}

func (m *machine) endPolygon(c byte) {
	if m.fill != nil && m.polyActive {
		m.polyActive = false
		if len(m.poly) >= 3 {
			points := make([]Point, len(m.poly))
			copy(points, m.poly)
			m.surf.Polygon(points, *m.fill)
		}
	}
	m.drew(c)
}

// Dot radius matches the classic turtle default of
// max(2*thickness, 4+thickness).
func (m *machine) dot(c byte) {
	if m.fill != nil {
		radius := math.Max(2*m.thickness, 4+m.thickness) / 2
		m.surf.Dot(m.pos, radius, *m.fill)
	}
	m.drew(c)
}

func (m *machine) push(byte) {
	m.stack = append(m.stack, m.snapshot())
}

func (m *machine) pop(byte) {
	if len(m.stack) == 0 {
		return
	}
	s := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.moveTo(s.Position)
	m.heading = s.Heading
	m.angle = s.Angle
	m.length = s.Length
	m.thickness = s.Thickness
	m.pen = s.PenColor
	m.fill = s.FillColor
	m.swapSigns = s.SwapSigns
	m.swapCases = s.SwapCases
	m.modifyFill = s.ModifyFill
}

func swapCase(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	}
	return c
}
