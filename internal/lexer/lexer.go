package lexer

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Type int

const (
	TOKEN_ILLEGAL Type = iota
	TOKEN_EOF
	TOKEN_INTEGER
	TOKEN_COMMA
	TOKEN_DIRECTION
	TOKEN_PLACE
	TOKEN_MOVE
	TOKEN_LEFT
	TOKEN_RIGHT
	TOKEN_REPORT
	TOKEN_HELP
	TOKEN_EXIT
)

var typeNames = map[Type]string{
	TOKEN_ILLEGAL:   "ILLEGAL",
	TOKEN_EOF:       "EOF",
	TOKEN_INTEGER:   "INTEGER",
	TOKEN_COMMA:     ",",
	TOKEN_DIRECTION: "DIRECTION",
	TOKEN_PLACE:     "PLACE",
	TOKEN_MOVE:      "MOVE",
	TOKEN_LEFT:      "LEFT",
	TOKEN_RIGHT:     "RIGHT",
	TOKEN_REPORT:    "REPORT",
	TOKEN_HELP:      "HELP",
	TOKEN_EXIT:      "EXIT",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

type Token struct {
	Type    Type
	Literal string
	Column  int
}

// Lexer tokenizes one command line. Verbs and compass keywords are
// case-sensitive upper-case, as in the command language.

type Lexer struct {
	scanner *lexmachine.Scanner
}

func New(input []byte) (*Lexer, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t\r\n]+`), skip)
	l.Add([]byte(`#[^\n]*`), skip)
	l.Add([]byte(`,`), tokAction(TOKEN_COMMA))

	keywords := map[string]Type{
		"PLACE":  TOKEN_PLACE,
		"MOVE":   TOKEN_MOVE,
		"LEFT":   TOKEN_LEFT,
		"RIGHT":  TOKEN_RIGHT,
		"REPORT": TOKEN_REPORT,
		"HELP":   TOKEN_HELP,
		"EXIT":   TOKEN_EXIT,
	}
	for keyword, tokenType := range keywords {
		l.Add([]byte(keyword), tokAction(tokenType))
	}
	for _, compass := range []string{"NORTH", "SOUTH", "EAST", "WEST"} {
		l.Add([]byte(compass), tokAction(TOKEN_DIRECTION))
	}

	l.Add([]byte(`-?(0|[1-9][0-9]*)`), tokAction(TOKEN_INTEGER))

	if err := l.Compile(); err != nil {
		return nil, err
	}
	scanner, err := l.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner}, nil
}

func (l *Lexer) NextToken() Token {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{Type: TOKEN_EOF}
	}
	if err != nil {
		return Token{Type: TOKEN_ILLEGAL, Literal: err.Error()}
	}
	return tok.(Token)
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(tokenType Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Type:    tokenType,
			Literal: string(m.Bytes),
			Column:  m.StartColumn,
		}, nil
	}
}
