package robot

import "fmt"

// Pose is the REPORT snapshot of a placed robot.
type Pose struct {
	X, Y   int
	Facing Direction
}

func (p Pose) String() string {
	return fmt.Sprintf("%d,%d,%s", p.X, p.Y, p.Facing)
}

// Robot is the toy robot state machine. It starts off the table and is
// mutated only through Place, Move, Left and Right. An operation whose
// precondition fails leaves the state untouched and reports false; the
// robot never leaves the table and never errors.

type Robot struct {
	table  Table
	pose   Pose
	placed bool
}

// New returns an unplaced robot confined to the given table.
func New(table Table) *Robot {
	return &Robot{table: table}
}

// Placed reports whether a valid PLACE has happened.
func (r *Robot) Placed() bool {
	return r.placed
}

// Place puts the robot on cell (x, y) facing f. Out-of-bounds coordinates
// are ignored, keeping the prior state (placed or not).
func (r *Robot) Place(x, y int, f Direction) bool {
	if !r.table.InBounds(x, y) {
		return false
	}
	r.pose = Pose{X: x, Y: y, Facing: f}
	r.placed = true
	return true
}

// Move steps one cell in the current heading, refusing any step that
// would leave the table.
func (r *Robot) Move() bool {
	if !r.placed {
		return false
	}
	dx, dy := r.pose.Facing.Vector()
	nx, ny := r.pose.X+dx, r.pose.Y+dy
	if !r.table.InBounds(nx, ny) {
		return false
	}
	r.pose.X, r.pose.Y = nx, ny
	return true
}

// Left turns the robot 90 degrees counter-clockwise.
func (r *Robot) Left() bool {
	if !r.placed {
		return false
	}
	r.pose.Facing = r.pose.Facing.Left()
	return true
}

// Right turns the robot 90 degrees clockwise.
func (r *Robot) Right() bool {
	if !r.placed {
		return false
	}
	r.pose.Facing = r.pose.Facing.Right()
	return true
}

// Report returns the current pose. The second result is false while the
// robot is unplaced; the zero pose returned then is not a position.
func (r *Robot) Report() (Pose, bool) {
	if !r.placed {
		return Pose{}, false
	}
	return r.pose, true
}
