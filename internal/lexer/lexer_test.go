package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `PLACE 1,2,EAST
MOVE
LEFT
RIGHT
REPORT
PLACE -1,7,NORTH # out of bounds but lexes fine
HELP
EXIT
`
	tests := []struct {
		expectedType    Type
		expectedLiteral string
	}{
		{TOKEN_PLACE, "PLACE"},
		{TOKEN_INTEGER, "1"},
		{TOKEN_COMMA, ","},
		{TOKEN_INTEGER, "2"},
		{TOKEN_COMMA, ","},
		{TOKEN_DIRECTION, "EAST"},
		{TOKEN_MOVE, "MOVE"},
		{TOKEN_LEFT, "LEFT"},
		{TOKEN_RIGHT, "RIGHT"},
		{TOKEN_REPORT, "REPORT"},
		{TOKEN_PLACE, "PLACE"},
		{TOKEN_INTEGER, "-1"},
		{TOKEN_COMMA, ","},
		{TOKEN_INTEGER, "7"},
		{TOKEN_COMMA, ","},
		{TOKEN_DIRECTION, "NORTH"},
		{TOKEN_HELP, "HELP"},
		{TOKEN_EXIT, "EXIT"},
		{TOKEN_EOF, ""},
	}

	l, err := New([]byte(input))
	if err != nil {
		t.Fatalf("Failed to create lexer: %v", err)
	}

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Illegal(t *testing.T) {
	input := "PLACE 1.0,2.0,EAST"
	l, err := New([]byte(input))
	if err != nil {
		t.Fatalf("Failed to create lexer: %v", err)
	}

	tok := l.NextToken() // PLACE
	tok = l.NextToken()  // 1
	tok = l.NextToken()  // the dot is not part of the language
	if tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TOKEN_ILLEGAL, tok.Type)
	}
}

func TestNextToken_LowercaseIsIllegal(t *testing.T) {
	l, err := New([]byte("move"))
	if err != nil {
		t.Fatalf("Failed to create lexer: %v", err)
	}
	if tok := l.NextToken(); tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TOKEN_ILLEGAL, tok.Type)
	}
}
