package interpreter

import (
	"fmt"

	"toyrobot/internal/robot"
)

// NoReportMessage is printed for REPORT on an unplaced robot.
const NoReportMessage = "Error: please first issue a in-bounds PLACE command"

const helpText = `Help: valid commands are
  'PLACE X,Y,F'  places the robot onto the tabletop with coordinates
                 X, Y (both 0-4) and heading F (NORTH, SOUTH, EAST, WEST)
  'MOVE'         moves the robot by one unit in the direction it is facing
  'LEFT'         rotates the robot by 90 degrees to the left
  'RIGHT'        rotates the robot by 90 degrees to the right
  'REPORT'       announces X, Y and heading F of the robot
  'HELP'         prints this message
  'EXIT'         closes the application
The tabletop's X-axis points EAST, the Y-axis points NORTH.`

// PrintHelp writes the command reference to the context output.
func (ctx *Context) PrintHelp() {
	fmt.Fprintln(ctx.Out, helpText)
}

// Exec runs the whole script. It reports whether EXIT stopped it early.
func (s *Script) Exec(ctx *Context) bool {
	for _, cmd := range s.Commands {
		if cmd.Exec(ctx) {
			return true
		}
	}
	return false
}

// Exec applies one command to the robot and renders the result. The
// return value is true only for EXIT. A command whose precondition
// fails leaves the robot untouched; the user gets the help text and
// the session goes on.
func (c *Command) Exec(ctx *Context) bool {
	switch {
	case c.Place != nil:
		x, y := c.Place.X.Int(), c.Place.Y.Int()
		f, ok := robot.ParseDirection(c.Place.Facing)
		if !ok {
			// unreachable through either parser, the grammar owns the keywords
			ctx.Log.Errorf("unknown direction %q", c.Place.Facing)
			return false
		}
		if ctx.Robot.Place(x, y, f) {
			ctx.Log.Infof("placed robot at X=%d, Y=%d, facing %s", x, y, f)
		} else {
			ctx.Log.Errorf("robot must be within the bounds of the tabletop, PLACE %d,%d,%s ignored", x, y, f)
			ctx.PrintHelp()
		}

	case c.Move:
		if ctx.Robot.Move() {
			ctx.Log.Debug("executed MOVE")
		} else {
			ctx.rejected("MOVE")
		}

	case c.Left:
		if ctx.Robot.Left() {
			ctx.Log.Debug("turning LEFT")
		} else {
			ctx.rejected("LEFT")
		}

	case c.Right:
		if ctx.Robot.Right() {
			ctx.Log.Debug("turning RIGHT")
		} else {
			ctx.rejected("RIGHT")
		}

	case c.Report:
		pose, ok := ctx.Robot.Report()
		if !ok {
			fmt.Fprintln(ctx.Out, NoReportMessage)
			return false
		}
		fmt.Fprintln(ctx.Out, pose)
		return false

	case c.Help:
		ctx.PrintHelp()
		return false

	case c.Exit:
		ctx.Log.Info("application stopped by user")
		return true
	}

	ctx.Draw()
	return false
}

func (ctx *Context) rejected(verb string) {
	if !ctx.Robot.Placed() {
		ctx.Log.Errorf("%s ignored: please first issue a in-bounds PLACE command", verb)
	} else {
		ctx.Log.Errorf("%s ignored: robot must stay within the bounds of the tabletop", verb)
	}
	ctx.PrintHelp()
}
