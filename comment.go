package wikitext

// parseComment parses an HTML comment "<!-- ... -->" at the head of the
// wikicode. An unterminated comment degrades to literal "<!--" text
// (spec §4.11).
func (t *Tokenizer) parseComment() {
	reset := t.head
	t.head += 4

	body, _, err := t.parse(Comment, true)
	if err != nil {
		t.head = reset + 3
		t.writeText("<!--")
		return
	}

	t.write(CommentStart{})
	t.writeAll(body)
	t.write(CommentEnd{})
}
