package wikitext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeTextPreservation(t *testing.T) {
	cases := []string{
		"plain text",
		"I has a template! {{foo|bar|baz|eggs=spam}} See it?",
		"{{foo|{{bar}}={{baz|{{spam}}}}}}",
		"==Heading==\ntext",
		"[[foo|bar]] and [[broken",
		"&amp; &#65; &#x1F600; &bogus;",
		"<ref>body</ref>",
		"",
		"no markup at all",
	}
	for _, text := range cases {
		toks := Tokenize(text)
		assert.Equal(t, text, render(toks), "round trip for %q", text)
	}
}

func TestTokenizeNoAdjacentText(t *testing.T) {
	toks := Tokenize("a{{b}}c{{d}}e")
	for i := 1; i < len(toks); i++ {
		_, prevText := toks[i-1].(Text)
		_, curText := toks[i].(Text)
		assert.False(t, prevText && curText, "adjacent Text tokens at %d", i)
	}
}

func TestTokenizeSimpleTemplate(t *testing.T) {
	toks := Tokenize("I has a template! {{foo|bar|baz|eggs=spam}} See it?")
	want := []Token{
		Text{Text: "I has a template! "},
		TemplateOpen{},
		Text{Text: "foo"},
		TemplateParamSeparator{},
		Text{Text: "bar"},
		TemplateParamSeparator{},
		Text{Text: "baz"},
		TemplateParamSeparator{},
		Text{Text: "eggs"},
		TemplateParamEquals{},
		Text{Text: "spam"},
		TemplateClose{},
		Text{Text: " See it?"},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeHeading(t *testing.T) {
	toks := Tokenize("==Heading==\ntext")
	want := []Token{
		HeadingStart{Level: 2},
		Text{Text: "Heading"},
		HeadingEnd{},
		Text{Text: "\ntext"},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeBrokenWikilinkDegradesToText(t *testing.T) {
	toks := Tokenize("[[foo|bar]] and [[broken")
	last := toks[len(toks)-1]
	assert.Equal(t, Text{Text: " and [[broken"}, last)
}

func TestTokenizeUnknownEntityDegradesToText(t *testing.T) {
	toks := Tokenize("&bogus;")
	assert.Equal(t, []Token{Text{Text: "&bogus;"}}, toks)
}

func TestTokenizeRespectsMaxDepth(t *testing.T) {
	nested := ""
	for i := 0; i < MaxDepth+10; i++ {
		nested += "{{a|"
	}
	for i := 0; i < MaxDepth+10; i++ {
		nested += "}}"
	}
	toks, stats := TokenizeWithStats(nested)
	assert.NotEmpty(t, toks)
	assert.True(t, stats.MaxDepthHit)
}

// render concatenates a token sequence's literal representation, used to
// check the text-preservation property from spec §8. HeadingEnd carries
// no level of its own, so a stack of open heading levels tracks how many
// "=" it closes.
func render(toks []Token) string {
	var out []byte
	var headingLevels []int
	for _, tok := range toks {
		if h, ok := tok.(HeadingStart); ok {
			headingLevels = append(headingLevels, h.Level)
		}
		if _, ok := tok.(HeadingEnd); ok {
			level := headingLevels[len(headingLevels)-1]
			headingLevels = headingLevels[:len(headingLevels)-1]
			for i := 0; i < level; i++ {
				out = append(out, '=')
			}
			continue
		}
		out = append(out, renderOne(tok)...)
	}
	return string(out)
}

func renderOne(tok Token) string {
	switch v := tok.(type) {
	case Text:
		return v.Text
	case TemplateOpen:
		return "{{"
	case TemplateClose:
		return "}}"
	case TemplateParamSeparator:
		return "|"
	case TemplateParamEquals:
		return "="
	case ArgumentOpen:
		return "{{{"
	case ArgumentClose:
		return "}}}"
	case ArgumentSeparator:
		return "|"
	case WikilinkOpen:
		return "[["
	case WikilinkClose:
		return "]]"
	case WikilinkSeparator:
		return "|"
	case HeadingStart:
		out := ""
		for i := 0; i < v.Level; i++ {
			out += "="
		}
		return out
	case HTMLEntityStart:
		return "&"
	case HTMLEntityNumeric:
		return "#"
	case HTMLEntityHex:
		return v.Char
	case HTMLEntityEnd:
		return ";"
	case CommentStart:
		return "<!--"
	case CommentEnd:
		return "-->"
	case TagOpenOpen:
		return "<"
	case TagCloseOpen:
		return v.Padding + ">"
	case TagCloseSelfclose:
		return v.Padding + "/>"
	case TagOpenClose:
		return "</"
	case TagCloseClose:
		return ">"
	case TagAttrStart:
		return v.PadFirst
	case TagAttrEquals:
		return "="
	case TagAttrQuote:
		return `"`
	default:
		return ""
	}
}
