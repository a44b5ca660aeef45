package interpreter

import (
	"bufio"
	"fmt"
	"time"
)

// Draw renders the tabletop with the robot shown as its heading glyph.
// During delayed script playback the screen is cleared first so the
// frames animate in place; in interactive mode earlier output stays put.
func (ctx *Context) Draw() {
	if ctx.Quiet {
		return
	}
	w := bufio.NewWriter(ctx.Out)
	if ctx.Delay > 0 {
		fmt.Fprint(w, "\033[2J\033[H") // ANSI clear
	}

	pose, placed := ctx.Robot.Report()
	for y := ctx.Table.MaxY; y >= ctx.Table.MinY; y-- {
		fmt.Fprintf(w, "%d ", y)
		for x := ctx.Table.MinX; x <= ctx.Table.MaxX; x++ {
			if placed && pose.X == x && pose.Y == y {
				fmt.Fprintf(w, "%c ", pose.Facing.Glyph())
			} else {
				fmt.Fprint(w, ". ")
			}
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, " ")
	for x := ctx.Table.MinX; x <= ctx.Table.MaxX; x++ {
		fmt.Fprintf(w, " %d", x)
	}
	fmt.Fprint(w, "\n")
	if placed {
		fmt.Fprintf(w, "robot at %s\n", pose)
	} else {
		fmt.Fprint(w, "robot not placed yet\n")
	}
	w.Flush()

	if ctx.Delay > 0 {
		time.Sleep(ctx.Delay)
	}
}
