package interpreter

import (
	"github.com/alecthomas/participle/v2"
)

// Script is a batch of robot commands, separated by newlines or ';'.
type Script struct {
	Commands []*Command `parser:"( @@ ';'? )*"`
}

type Command struct {
	Place  *Place `parser:"@@"`
	Move   bool   `parser:"| @'MOVE'"`
	Left   bool   `parser:"| @'LEFT'"`
	Right  bool   `parser:"| @'RIGHT'"`
	Report bool   `parser:"| @'REPORT'"`
	Help   bool   `parser:"| @'HELP'"`
	Exit   bool   `parser:"| @'EXIT'"`
}

type Place struct {
	X      *Coord `parser:"'PLACE' @@ ','"`
	Y      *Coord `parser:"@@ ','"`
	Facing string `parser:"@('NORTH'|'SOUTH'|'EAST'|'WEST')"`
}

// Coord is a table coordinate. Negative values parse fine and are
// rejected later by the robot's bounds check, not by the grammar.
type Coord struct {
	Neg   bool `parser:"@'-'?"`
	Value int  `parser:"@Int"`
}

func (c *Coord) Int() int {
	if c.Neg {
		return -c.Value
	}
	return c.Value
}

var parser = participle.MustBuild[Script]()

func Parse(data string) (*Script, error) {
	return parser.ParseString("input", data)
}
