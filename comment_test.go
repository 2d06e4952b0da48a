package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentSimple(t *testing.T) {
	toks := Tokenize("<!-- hello -->")
	assert.Equal(t, []Token{
		CommentStart{},
		Text{Text: " hello "},
		CommentEnd{},
	}, toks)
}

func TestCommentFollowedByText(t *testing.T) {
	toks := Tokenize("a<!--x-->b")
	want := []Token{
		Text{Text: "a"},
		CommentStart{},
		Text{Text: "x"},
		CommentEnd{},
		Text{Text: "b"},
	}
	assert.Equal(t, want, toks)
}

func TestCommentUnterminatedDegradesToText(t *testing.T) {
	toks := Tokenize("<!-- never closes")
	assert.Equal(t, []Token{Text{Text: "<!-- never closes"}}, toks)
}

func TestCommentEmptyBody(t *testing.T) {
	toks := Tokenize("<!---->")
	assert.Equal(t, []Token{
		CommentStart{},
		CommentEnd{},
	}, toks)
}

func TestCommentSuppressesMarkupInside(t *testing.T) {
	toks := Tokenize("<!-- {{foo}} -->")
	assert.Equal(t, []Token{
		CommentStart{},
		Text{Text: " {{foo}} "},
		CommentEnd{},
	}, toks)
}
