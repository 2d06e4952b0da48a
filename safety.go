package wikitext

// verifySafe makes sure we are not about to write an invalid character
// while inside a context that forbids breaking markup partway through
// (spec §4.12). It may arm transient guard flags on the current frame's
// context as a side effect; the boolean return says whether `this` may be
// consumed at all.
func (t *Tokenizer) verifySafe(this seg) bool {
	c := t.context()
	if c.Has(FailNext) {
		return false
	}

	if c.Has(WikilinkTitle) {
		if this.eq(']') || this.eq('{') {
			t.setContext(t.context() | FailNext)
			return true
		}
		if this.eq('\n') || this.eq('[') || this.eq('}') {
			return false
		}
		return true
	}

	if c.Has(TemplateName) {
		if this.eq('{') || this.eq('}') || this.eq('[') {
			t.setContext(t.context() | FailNext)
			return true
		}
		if this.eq(']') {
			return false
		}
		if this.eq('|') {
			return true
		}
		if c.Has(HasText) {
			if c.Has(FailOnText) {
				if this.isEnd() || !this.isSpace() {
					return false
				}
			} else if this.eq('\n') {
				t.setContext(t.context() | FailOnText)
			}
		} else if this.isEnd() || !this.isSpace() {
			t.setContext(t.context() | HasText)
		}
		return true
	}

	if c.Has(TagClose) {
		return !this.eq('<')
	}

	// Default: TEMPLATE_PARAM_KEY / ARGUMENT_NAME.
	switch {
	case c.Has(FailOnEquals):
		if this.eq('=') {
			return false
		}
	case c.Has(FailOnLbrace):
		if this.eq('{') || (t.read(-1).eq('{') && t.read(-2).eq('{')) {
			if c.Has(Template) {
				t.setContext(t.context() | FailOnEquals)
			} else {
				t.setContext(t.context() | FailNext)
			}
			return true
		}
		t.setContext(t.context() ^ FailOnLbrace)
	case c.Has(FailOnRbrace):
		if this.eq('}') {
			if c.Has(Template) {
				t.setContext(t.context() | FailOnEquals)
			} else {
				t.setContext(t.context() | FailNext)
			}
			return true
		}
		t.setContext(t.context() ^ FailOnRbrace)
	case this.eq('{'):
		t.setContext(t.context() | FailOnLbrace)
	case this.eq('}'):
		t.setContext(t.context() | FailOnRbrace)
	}
	return true
}
