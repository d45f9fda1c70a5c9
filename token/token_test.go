package token

import "testing"

func TestLookupIdentifierRecognizesKeywords(t *testing.T) {
	tests := []struct {
		word string
		want Type
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"for", FOR},
		{"fun", FUNCTION},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VARIABLE},
		{"while", WHILE},
	}
	for _, tt := range tests {
		if got := LookupIdentifier(tt.word); got != tt.want {
			t.Errorf("LookupIdentifier(%q) = %s, want %s", tt.word, got, tt.want)
		}
	}
}

func TestLookupIdentifierFallsBackToIdentifier(t *testing.T) {
	tests := []string{"foobar", "Fun", "classic", "_private", "x1"}
	for _, word := range tests {
		if got := LookupIdentifier(word); got != IDENTIFIER {
			t.Errorf("LookupIdentifier(%q) = %s, want IDENTIFIER", word, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENTIFIER, Lexeme: "foobar", Line: 3}
	if got := tok.String(); got != "IDENTIFIER foobar" {
		t.Errorf("String() = %q, want %q", got, "IDENTIFIER foobar")
	}
}

func TestTokenLiteralIsOptional(t *testing.T) {
	numberTok := Token{Type: NUMBER, Lexeme: "3.14", Literal: 3.14, Line: 1}
	if numberTok.Literal != 3.14 {
		t.Errorf("Literal = %v, want 3.14", numberTok.Literal)
	}

	eofTok := Token{Type: EOF, Line: 1}
	if eofTok.Literal != nil {
		t.Errorf("Literal = %v, want nil for a token with no literal", eofTok.Literal)
	}
}
