package interpreter

import (
	"fmt"
	"strconv"

	"toyrobot/internal/lexer"
)

// ParseLine parses a single interactive command line into a Command.
// A blank line yields (nil, nil). Unlike the script grammar this path
// reports a friendly error per line so the session can recover.
func ParseLine(line string) (*Command, error) {
	l, err := lexer.New([]byte(line))
	if err != nil {
		return nil, err
	}

	tok := l.NextToken()
	switch tok.Type {
	case lexer.TOKEN_EOF:
		return nil, nil
	case lexer.TOKEN_PLACE:
		return parsePlace(l)
	case lexer.TOKEN_MOVE:
		return end(l, &Command{Move: true})
	case lexer.TOKEN_LEFT:
		return end(l, &Command{Left: true})
	case lexer.TOKEN_RIGHT:
		return end(l, &Command{Right: true})
	case lexer.TOKEN_REPORT:
		return end(l, &Command{Report: true})
	case lexer.TOKEN_HELP:
		return end(l, &Command{Help: true})
	case lexer.TOKEN_EXIT:
		return end(l, &Command{Exit: true})
	case lexer.TOKEN_ILLEGAL:
		return nil, fmt.Errorf("unrecognized input: %s", tok.Literal)
	default:
		return nil, fmt.Errorf("'%s' is not a valid command verb", tok.Literal)
	}
}

// parsePlace consumes `X , Y , F` after the PLACE keyword.
func parsePlace(l *lexer.Lexer) (*Command, error) {
	x, err := expectInt(l)
	if err != nil {
		return nil, err
	}
	if err := expectComma(l); err != nil {
		return nil, err
	}
	y, err := expectInt(l)
	if err != nil {
		return nil, err
	}
	if err := expectComma(l); err != nil {
		return nil, err
	}
	dir := l.NextToken()
	if dir.Type != lexer.TOKEN_DIRECTION {
		return nil, fmt.Errorf("PLACE needs a heading NORTH, SOUTH, EAST or WEST, got %q", dir.Literal)
	}
	return end(l, &Command{Place: &Place{
		X:      newCoord(x),
		Y:      newCoord(y),
		Facing: dir.Literal,
	}})
}

func expectInt(l *lexer.Lexer) (int, error) {
	tok := l.NextToken()
	if tok.Type != lexer.TOKEN_INTEGER {
		return 0, fmt.Errorf("PLACE needs integer coordinates, got %q", tok.Literal)
	}
	return strconv.Atoi(tok.Literal)
}

func expectComma(l *lexer.Lexer) error {
	if tok := l.NextToken(); tok.Type != lexer.TOKEN_COMMA {
		return fmt.Errorf("PLACE parameters must be comma separated, got %q", tok.Literal)
	}
	return nil
}

// end asserts there is nothing left on the line.
func end(l *lexer.Lexer, cmd *Command) (*Command, error) {
	if tok := l.NextToken(); tok.Type != lexer.TOKEN_EOF {
		return nil, fmt.Errorf("unexpected trailing input %q", tok.Literal)
	}
	return cmd, nil
}

func newCoord(v int) *Coord {
	if v < 0 {
		return &Coord{Neg: true, Value: -v}
	}
	return &Coord{Value: v}
}
