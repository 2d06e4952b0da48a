package wikitext

// parseWikilink parses a "[[title|text]]" wikilink at the head of the
// wikicode. Like parseTemplateOrArgument, it never propagates a route
// failure to its caller: an invalid wikilink degrades to literal text in
// place (spec §4.6).
func (t *Tokenizer) parseWikilink() error {
	reset := t.head
	t.head += 2

	title, _, err := t.parse(WikilinkTitle, true)
	if err != nil {
		t.head = reset + 1
		t.writeText("[[")
		return nil
	}

	if t.context().Has(FailNext) {
		t.setContext(t.context() ^ FailNext)
	}
	t.write(WikilinkOpen{})
	t.writeAll(title)
	t.write(WikilinkClose{})
	return nil
}

// handleWikilinkSeparator handles the "|" that separates a wikilink's
// title from its display text.
func (t *Tokenizer) handleWikilinkSeparator() {
	t.setContext(t.context() ^ WikilinkTitle)
	t.setContext(t.context() | WikilinkText)
	t.write(WikilinkSeparator{})
}

// handleWikilinkEnd handles "]]" closing a wikilink.
func (t *Tokenizer) handleWikilinkEnd() []Token {
	t.head++
	return t.pop(false)
}
