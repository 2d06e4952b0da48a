package wikitext

import (
	"strings"
	"unicode"

	"github.com/bt2901/wikitext/internal/tagdefs"
)

// tagLocalCX is the tag-open scratch state machine's local context, kept
// separate from the frame-level Context bitmask because it tracks
// positions within a single tag's opening ("<ref foo="bar">") that no
// other construct needs to see (spec's "Tag-open scratch").
type tagLocalCX uint16

const (
	cxName tagLocalCX = 1 << iota
	cxNeedSpace
	cxAttrReady
	cxAttrName
	cxAttrValue
	cxNeedQuote
	cxQuoted
	cxNeedEquals
)

func (c tagLocalCX) has(mask tagLocalCX) bool { return c&mask != 0 }

// tagOpenData is the mutable scratch record threaded through a tag's
// opening scan: the local state, the whitespace padding captured between
// syntactic positions, the head position saved when a quote is opened, and
// whether a previously-misjudged quote should be ignored on replay.
type tagOpenData struct {
	context     tagLocalCX
	padding     []string
	reset       int
	ignoreQuote bool
}

// parseTag parses an HTML-style tag's opening, body, and close at the head
// of the wikicode ("<ref name=\"x\">body</ref>"). Like the other
// construct sub-scanners, failure degrades to literal "<" rather than
// propagating to the caller (spec §4.11).
func (t *Tokenizer) parseTag() error {
	reset := t.head
	if !t.reallyParseTag() {
		t.head = reset
		t.writeText("<")
	}
	return nil
}

func (t *Tokenizer) reallyParseTag() bool {
	t.head++
	base := len(t.stack)
	t.push(TagOpen)
	t.write(TagOpenOpen{ShowTag: true})
	data := &tagOpenData{context: cxName}

	// abandon discards every frame pushed during this tag attempt (the
	// TAG_OPEN frame plus any in-progress attribute/quote frames) so a
	// failure anywhere in the state machine unwinds cleanly.
	abandon := func() bool {
		for len(t.stack) > base {
			t.pop(false)
		}
		return false
	}

	for {
		this := t.read(0)
		next := t.read(1)
		canExit := (!data.context.has(cxQuoted) && !data.context.has(cxName)) || data.context.has(cxNeedSpace)

		switch {
		case this.isEnd():
			return abandon()

		case this.eq('>') && canExit:
			if data.context.has(cxAttrName) || data.context.has(cxAttrValue) {
				t.flushTagAttribute(data)
			}
			pad := ""
			if len(data.padding) > 0 {
				pad = data.padding[0]
			}
			t.write(TagCloseOpen{Padding: pad})
			name := t.tagOpenName()
			t.setContext(TagBody)
			t.top().raw = !tagdefs.IsParsable(strings.ToLower(strings.TrimSpace(name)))
			t.head++
			body, _, err := t.parse(0, false)
			if err != nil {
				return abandon()
			}
			t.writeAll(body)
			return true

		case this.eq('/') && next.eq('>') && canExit:
			if data.context.has(cxAttrName) || data.context.has(cxAttrValue) {
				t.flushTagAttribute(data)
			}
			pad := ""
			if len(data.padding) > 0 {
				pad = data.padding[0]
			}
			t.write(TagCloseSelfclose{Padding: pad})
			t.head++
			t.writeAll(t.pop(false))
			return true

		case !this.isMarker() && !this.isBoundary():
			restarted := false
			for _, chunk := range splitTagChunks(this.text) {
				restart, ok := t.handleTagChunk(data, chunk)
				if !ok {
					return abandon()
				}
				if restart {
					restarted = true
					break
				}
			}
			if restarted {
				continue
			}

		default:
			restart, ok := t.handleTagChunk(data, this.text)
			if !ok {
				return abandon()
			}
			if restart {
				continue
			}
		}
		t.head++
	}
}

// tagOpenName reads the tag name already written to the current (TAG_OPEN)
// frame: the Text token immediately after TagOpenOpen.
func (t *Tokenizer) tagOpenName() string {
	f := t.top()
	if len(f.tokens) > 1 {
		if txt, ok := f.tokens[1].(Text); ok {
			return txt.Text
		}
	}
	return ""
}

// handleTagChunk dispatches one chunk of a tag's opening through the
// tag-open scratch state machine (spec §4.11.2). restart signals that the
// head has been rewound and reallyParseTag's loop must re-read from
// scratch without advancing; ok is false on route failure.
func (t *Tokenizer) handleTagChunk(data *tagOpenData, chunk string) (restart, ok bool) {
	c := data.context

	switch {
	case c.has(cxName):
		if chunk == "" || isAllSpace(chunk) || isMarkerChunk(chunk) {
			return false, false
		}
		t.writeText(chunk)
		data.context = cxNeedSpace
		return false, true

	case c.has(cxNeedSpace):
		if isAllSpace(chunk) {
			if c.has(cxAttrValue) {
				t.flushTagAttribute(data)
			}
			data.padding = append(data.padding, chunk)
			data.context = cxAttrReady
			return false, true
		}
		if c.has(cxQuoted) {
			data.context &^= cxNeedSpace | cxQuoted
			data.ignoreQuote = true
			t.pop(false)
			t.head = data.reset
			return true, true
		}
		return false, false

	case c.has(cxAttrReady):
		if isAllSpace(chunk) {
			data.padding = append(data.padding, chunk)
			return false, true
		}
		data.context = cxAttrName
		t.push(TagAttr)
		t.parseTagChunk(chunk)
		return false, true

	case c.has(cxAttrName):
		if isAllSpace(chunk) {
			data.padding = append(data.padding, chunk)
			data.context |= cxNeedEquals
			return false, true
		}
		if chunk == "=" {
			if !c.has(cxNeedEquals) {
				data.padding = append(data.padding, "")
			}
			data.context = cxAttrValue | cxNeedQuote
			t.write(TagAttrEquals{})
			return false, true
		}
		if c.has(cxNeedEquals) {
			t.flushTagAttribute(data)
			data.padding = append(data.padding, "")
			data.context = cxAttrName
			t.push(TagAttr)
		}
		t.parseTagChunk(chunk)
		return false, true

	case c.has(cxAttrValue) && c.has(cxNeedQuote):
		if chunk == `"` && !data.ignoreQuote {
			data.context = (data.context &^ cxNeedQuote) | cxQuoted
			t.push(t.context())
			data.reset = t.head
			return false, true
		}
		if isAllSpace(chunk) {
			data.padding = append(data.padding, chunk)
			return false, true
		}
		data.context &^= cxNeedQuote
		t.parseTagChunk(chunk)
		return false, true

	case c.has(cxAttrValue) && c.has(cxQuoted):
		if chunk == `"` {
			data.context |= cxNeedSpace
			return false, true
		}
		t.parseTagChunk(chunk)
		return false, true

	case c.has(cxAttrValue):
		if isAllSpace(chunk) {
			t.flushTagAttribute(data)
			data.padding = append(data.padding, chunk)
			data.context = cxAttrReady
			return false, true
		}
		t.parseTagChunk(chunk)
		return false, true
	}
	return false, true
}

// parseTagChunk writes one chunk of tag content: a lone "{"/"[" followed
// by its twin, or a lone "<", may still trigger the usual nested-construct
// recursion; everything else is literal text (spec §4.11.2).
func (t *Tokenizer) parseTagChunk(chunk string) {
	switch chunk {
	case "{":
		if t.read(1).eq('{') && t.canRecurse() {
			t.parseTemplateOrArgument()
			return
		}
	case "[":
		if t.read(1).eq('[') && t.canRecurse() {
			t.parseWikilink()
			return
		}
	case "<":
		if t.canRecurse() {
			t.parseTag()
			return
		}
	}
	t.writeText(chunk)
}

// flushTagAttribute commits the in-progress attribute: wraps a quoted
// value with TagAttrQuote, prepends TagAttrStart with its three padding
// slots, and writes the whole attribute into the tag's frame (spec
// §4.11.3).
func (t *Tokenizer) flushTagAttribute(data *tagOpenData) {
	if data.context.has(cxQuoted) {
		t.writeFirst(TagAttrQuote{})
		inner := t.pop(false)
		t.writeAll(inner)
	}
	for len(data.padding) < 3 {
		data.padding = append(data.padding, "")
	}
	t.writeFirst(TagAttrStart{
		PadFirst:    data.padding[0],
		PadBeforeEq: data.padding[1],
		PadAfterEq:  data.padding[2],
	})
	attr := t.pop(false)
	t.writeAll(attr)
	data.padding = nil
	data.ignoreQuote = false
}

// handleTagOpenClose handles "</" seen while scanning a tag's body: it
// opens the matching close-tag frame that handleTagCloseClose later
// compares against the opening name.
func (t *Tokenizer) handleTagOpenClose() {
	t.write(TagOpenClose{})
	t.push(TagClose)
	t.head++
}

// handleTagCloseClose handles the ">" that closes a "</name>" close tag,
// failing the route if the trimmed, case-folded name doesn't match the
// tag's opening name (spec §4.11).
func (t *Tokenizer) handleTagCloseClose() ([]Token, error) {
	closeTokens := t.pop(false)
	openName := t.tagOpenName()
	closeName := tokenText(closeTokens)
	if !strings.EqualFold(strings.TrimSpace(openName), strings.TrimSpace(closeName)) {
		return nil, t.failRoute()
	}
	t.writeAll(closeTokens)
	t.write(TagCloseClose{})
	return t.pop(false), nil
}

func tokenText(toks []Token) string {
	var b strings.Builder
	for _, tok := range toks {
		if txt, ok := tok.(Text); ok {
			b.WriteString(txt.Text)
		}
	}
	return b.String()
}

func isAllSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isMarkerChunk(chunk string) bool {
	r := []rune(chunk)
	return len(r) == 1 && isMarkerRune(r[0])
}

// splitTagChunks splits one non-marker text segment into whitespace runs,
// lone '"'/'\\' characters, and runs of everything else, mirroring the
// tag-open loop's whitespace/quote/backslash chunk splitter.
func splitTagChunks(text string) []string {
	var chunks []string
	var run []rune
	var ws []rune
	flushRun := func() {
		if len(run) > 0 {
			chunks = append(chunks, string(run))
			run = nil
		}
	}
	flushWS := func() {
		if len(ws) > 0 {
			chunks = append(chunks, string(ws))
			ws = nil
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flushRun()
			ws = append(ws, r)
		case r == '"' || r == '\\':
			flushWS()
			flushRun()
			chunks = append(chunks, string(r))
		default:
			flushWS()
			run = append(run, r)
		}
	}
	flushWS()
	flushRun()
	return chunks
}
