package wikitext

import (
	"strconv"
	"strings"

	"github.com/bt2901/wikitext/internal/entities"
)

const (
	decimalAlphabet = "0123456789"
	hexAlphabet     = "0123456789abcdefABCDEF"
	namedAlphabet   = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// parseEntity parses an HTML character reference ("&amp;", "&#65;",
// "&#x1F600;") at the head of the wikicode. An invalid reference degrades
// to a literal "&" rather than propagating a route failure (spec §4.10).
func (t *Tokenizer) parseEntity() {
	reset := t.head
	if !t.reallyParseEntity() {
		t.head = reset
		t.writeText("&")
	}
}

// reallyParseEntity does the actual work and reports whether a valid
// entity was found and committed to the parent frame.
func (t *Tokenizer) reallyParseEntity() bool {
	t.push(0)
	t.write(HTMLEntityStart{})
	t.head++

	this, err := t.readStrict(0)
	if err != nil {
		// readStrict already popped this frame via failRoute.
		return false
	}

	numeric := this.eq('#')
	hex := false
	if numeric {
		t.write(HTMLEntityNumeric{})
		t.head++
		this, err = t.readStrict(0)
		if err != nil {
			return false
		}
		if this.kind == segText && len(this.text) > 0 && (this.text[0] == 'x' || this.text[0] == 'X') {
			hex = true
			t.write(HTMLEntityHex{Char: this.text[:1]})
			this = seg{kind: this.kind, text: this.text[1:]}
		}
	}

	text := this.text
	if text == "" {
		t.pop(false)
		return false
	}

	alphabet := namedAlphabet
	switch {
	case hex:
		alphabet = hexAlphabet
	case numeric:
		alphabet = decimalAlphabet
	}
	for _, r := range text {
		if !strings.ContainsRune(alphabet, r) {
			t.pop(false)
			return false
		}
	}

	t.head++
	term, err := t.readStrict(0)
	if err != nil {
		return false
	}
	if !term.eq(';') {
		t.pop(false)
		return false
	}

	if numeric {
		base := 10
		if hex {
			base = 16
		}
		value, convErr := strconv.ParseInt(text, base, 64)
		if convErr != nil || value < 1 || value > 0x10FFFF {
			t.pop(false)
			return false
		}
	} else if !entities.IsNamed(text) {
		t.pop(false)
		return false
	}

	t.write(Text{Text: text})
	t.write(HTMLEntityEnd{})
	t.writeAll(t.pop(false))
	return true
}
