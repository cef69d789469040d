package token_test

import (
	"testing"

	"github.com/FollowTheProcess/sputter/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Token
	}{
		{"def", token.DEF},
		{"lambda", token.LAMBDA},
		{"if", token.IF},
		{"else", token.ELSE},
		{"let", token.LET},
		{"use", token.USE},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"none", token.NONE},
		{"and", token.AND},
		{"or", token.OR},
		{"foo", token.IDENT},
	}
	for _, tt := range tests {
		if got := token.Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestIsTypename(t *testing.T) {
	if !token.IsTypename("int") {
		t.Error("IsTypename(\"int\") = false, want true")
	}
	if token.IsTypename("widget") {
		t.Error("IsTypename(\"widget\") = true, want false")
	}
}

func TestIsOperator(t *testing.T) {
	if !token.IsOperator(token.PLUS) {
		t.Error("IsOperator(PLUS) = false, want true")
	}
	if token.IsOperator(token.IDENT) {
		t.Error("IsOperator(IDENT) = true, want false")
	}
}

func TestString(t *testing.T) {
	if got, want := token.LPAREN.String(), "("; got != want {
		t.Errorf("LPAREN.String() = %q, want %q", got, want)
	}
}
