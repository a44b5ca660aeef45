package robot

// Direction is a compass heading on the table

type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// compass order is clockwise, so rotation is index arithmetic mod 4
var directionNames = [4]string{"NORTH", "EAST", "SOUTH", "WEST"}

// unit step for one MOVE in each heading, X axis points EAST, Y axis points NORTH
var directionVectors = [4]struct{ DX, DY int }{
	{0, 1},  // North
	{1, 0},  // East
	{0, -1}, // South
	{-1, 0}, // West
}

func (d Direction) String() string {
	if d < North || d > West {
		return "INVALID"
	}
	return directionNames[d]
}

// Vector returns the table offset of one forward step.
func (d Direction) Vector() (dx, dy int) {
	v := directionVectors[d]
	return v.DX, v.DY
}

// Left rotates 90 degrees counter-clockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right rotates 90 degrees clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Glyph returns the map character drawn for a robot with this heading.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return 'O'
}

// ParseDirection resolves a compass keyword like "NORTH".
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return North, false
}
