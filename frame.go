package wikitext

import "strings"

// frame is a tentative tokenization: an ordered token buffer, the context
// bitmask that says what's being parsed, and a pending-text buffer that
// coalesces consecutive literal characters into a single Text token before
// any non-text token is written.
type frame struct {
	tokens  []Token
	context Context
	text    strings.Builder

	// raw stops template, argument, wikilink and nested-tag recognition in
	// a TAG_BODY frame whose tag name is known non-parsable (e.g. <nowiki>,
	// <pre>). Entities, comments and headings are still recognized, and
	// frames pushed from the body (a heading's title) are not raw.
	raw bool
}

// MaxDepth and MaxCycles are the tokenizer's only tunables: the maximum
// simultaneous route depth and the maximum total frame-pushes per
// Tokenize call. Both are fixed at compile time (spec §6); there is no
// configuration surface beyond them.
const (
	MaxDepth  = 40
	MaxCycles = 100000
)

func (t *Tokenizer) top() *frame {
	return t.stack[len(t.stack)-1]
}

// push adds a fresh frame with the given context to the route stack.
func (t *Tokenizer) push(context Context) {
	t.stack = append(t.stack, &frame{context: context})
	t.depth++
	t.cycles++
}

// flushText pushes the current frame's pending text buffer onto its token
// buffer as a single Text token, if non-empty.
func (t *Tokenizer) flushText() {
	f := t.top()
	if f.text.Len() > 0 {
		f.tokens = append(f.tokens, Text{Text: f.text.String()})
		f.text.Reset()
	}
}

// pop removes the current frame and returns its token buffer. If
// keepContext is true, the popped frame's context replaces the new top
// frame's context — used when a template parameter value frame completes
// and its inherited context must propagate back to the parent.
func (t *Tokenizer) pop(keepContext bool) []Token {
	t.flushText()
	t.depth--
	popped := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	if keepContext && len(t.stack) > 0 {
		t.stack[len(t.stack)-1].context = popped.context
	}
	return popped.tokens
}

// canRecurse reports whether the two safety caps still allow pushing a new
// speculative frame.
func (t *Tokenizer) canRecurse() bool {
	return t.depth < MaxDepth && t.cycles < MaxCycles
}

// failRoute discards the current frame and signals route-failure to the
// nearest catching call site.
func (t *Tokenizer) failRoute() error {
	t.pop(false)
	return errRouteFailure
}

// context is the current (top) frame's context bitmask.
func (t *Tokenizer) context() Context {
	return t.top().context
}

func (t *Tokenizer) setContext(c Context) {
	t.top().context = c
}

// write flushes pending text and appends tok to the current frame.
func (t *Tokenizer) write(tok Token) {
	t.flushText()
	f := t.top()
	f.tokens = append(f.tokens, tok)
}

// writeFirst flushes pending text and prepends tok to the current frame.
func (t *Tokenizer) writeFirst(tok Token) {
	t.flushText()
	f := t.top()
	f.tokens = append([]Token{tok}, f.tokens...)
}

// writeText appends s to the current frame's pending text buffer.
func (t *Tokenizer) writeText(s string) {
	t.top().text.WriteString(s)
}

// writeAll appends a whole token slice to the current frame at once,
// merging a leading Text token into the pending buffer so it still
// coalesces with whatever was already pending.
func (t *Tokenizer) writeAll(toks []Token) {
	if len(toks) > 0 {
		if txt, ok := toks[0].(Text); ok {
			t.writeText(txt.Text)
			toks = toks[1:]
		}
	}
	t.flushText()
	f := t.top()
	f.tokens = append(f.tokens, toks...)
}

// writeTextThenStack pops the current frame (abandoning it as markup),
// writes text as a literal, writes the popped tokens back into the now-
// current (parent) frame, and steps head back by one on the assumption
// that the caller's loop will re-advance it. This exact cursor discipline
// matters around "{{{"/"{{{{" boundaries — see DESIGN.md open question (c).
func (t *Tokenizer) writeTextThenStack(text string) {
	popped := t.pop(false)
	t.writeText(text)
	if len(popped) > 0 {
		t.writeAll(popped)
	}
	t.head--
}
