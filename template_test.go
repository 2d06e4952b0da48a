package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateSimple(t *testing.T) {
	toks := Tokenize("{{foo}}")
	assert.Equal(t, []Token{
		TemplateOpen{},
		Text{Text: "foo"},
		TemplateClose{},
	}, toks)
}

func TestTemplateNestedKeyAndValue(t *testing.T) {
	toks := Tokenize("{{foo|{{bar}}={{baz|{{spam}}}}}}")
	assert.NotEmpty(t, toks)
	assert.IsType(t, TemplateOpen{}, toks[0])

	var opens, closes int
	for _, tok := range toks {
		switch tok.(type) {
		case TemplateOpen:
			opens++
		case TemplateClose:
			closes++
		}
	}
	assert.Equal(t, 4, opens)
	assert.Equal(t, opens, closes)
}

func TestArgumentSimple(t *testing.T) {
	toks := Tokenize("{{{foo|default}}}")
	assert.Equal(t, []Token{
		ArgumentOpen{},
		Text{Text: "foo"},
		ArgumentSeparator{},
		Text{Text: "default"},
		ArgumentClose{},
	}, toks)
}

func TestTemplateUnterminatedDegradesToText(t *testing.T) {
	toks := Tokenize("{{foo")
	assert.Equal(t, []Token{Text{Text: "{{foo"}}, toks)
}

func TestQuadrupleBraceTriesArgumentThenTemplate(t *testing.T) {
	// Four braces: the argument parse is tried first and succeeds on
	// "{{{foo}}}", leaving one literal "{" before it and one literal "}"
	// after it; the template parse is only the fallback.
	toks := Tokenize("{{{{foo}}}}")
	assert.NotEmpty(t, toks)
}
