package interpreter

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"toyrobot/internal/robot"
)

func TestDrawUnplaced(t *testing.T) {
	ctx := NewContext()
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Log.SetOutput(io.Discard)

	ctx.Draw()
	got := out.String()
	if !strings.Contains(got, "robot not placed yet") {
		t.Errorf("Draw() missing unplaced notice:\n%s", got)
	}
	if strings.ContainsAny(got, "^>v<") {
		t.Errorf("Draw() rendered a robot glyph with no robot placed:\n%s", got)
	}
}

func TestDrawGlyphPerFacing(t *testing.T) {
	tests := []struct {
		script string
		glyph  string
	}{
		{"PLACE 2,2,NORTH", "^"},
		{"PLACE 2,2,EAST", ">"},
		{"PLACE 2,2,SOUTH", "v"},
		{"PLACE 2,2,WEST", "<"},
	}

	for _, tt := range tests {
		ctx := NewContext()
		out := &bytes.Buffer{}
		ctx.Out = out
		ctx.Log.SetOutput(io.Discard)

		script, err := Parse(tt.script)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.script, err)
		}
		script.Exec(ctx)

		if !strings.Contains(out.String(), tt.glyph) {
			t.Errorf("%s: frame missing glyph %q:\n%s", tt.script, tt.glyph, out.String())
		}
	}
}

func TestDrawRobotCell(t *testing.T) {
	ctx := NewContext()
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Log.SetOutput(io.Discard)

	ctx.Robot.Place(1, 3, robot.East)
	ctx.Draw()

	// rows print top down: y=4 first, so y=3 is the second line
	lines := strings.Split(out.String(), "\n")
	if len(lines) < 2 {
		t.Fatalf("Draw() produced too few lines:\n%s", out.String())
	}
	if got := strings.TrimRight(lines[1], " "); got != "3 . > . . ." {
		t.Errorf("row for y=3 = %q, want %q", got, "3 . > . . .")
	}
}
