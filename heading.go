package wikitext

import "strings"

// parseHeading parses a "=="-delimited heading at column 0. Like the other
// construct sub-scanners, a failed speculative parse degrades to literal
// "=" text rather than propagating to the caller (spec §4.9).
func (t *Tokenizer) parseHeading() error {
	t.global |= globalHeading
	reset := t.head
	t.head++
	best := 1
	for t.read(0).eq('=') {
		best++
		t.head++
	}
	level := best
	if level > 6 {
		level = 6
	}

	title, resultLevel, err := t.parse(HeadingLevelContext(level), true)
	if err != nil {
		t.head = reset + best - 1
		t.writeText(strings.Repeat("=", best))
		t.global ^= globalHeading
		return nil
	}

	t.write(HeadingStart{Level: resultLevel})
	if best > resultLevel {
		t.writeText(strings.Repeat("=", best-resultLevel))
	}
	t.writeAll(title)
	t.write(HeadingEnd{})
	t.global ^= globalHeading
	return nil
}

// handleHeadingEnd handles a "=" encountered while scanning a heading's
// title. A heading can close at any of several candidate levels depending
// on how many trailing "=" characters follow; this recursively looks for a
// further, rightward closure and prefers it over the immediate one, so
// that e.g. "===x==" resolves its level from the rightmost valid run
// (spec §4.9).
func (t *Tokenizer) handleHeadingEnd() ([]Token, int, error) {
	reset := t.head
	t.head++
	best := 1
	for t.read(0).eq('=') {
		best++
		t.head++
	}

	cur := t.context()
	level := HeadingLevelOf(cur)
	if best < level {
		level = best
	}
	if level > 6 {
		level = 6
	}

	after, afterLevel, err := t.parse(cur, true)
	if err != nil {
		if level < best {
			t.writeText(strings.Repeat("=", best-level))
		}
		t.head = reset + best - 1
		return t.pop(false), level, nil
	}

	t.writeText(strings.Repeat("=", best))
	t.writeAll(after)
	return t.pop(false), afterLevel, nil
}
