package wikitext

// parseTemplateOrArgument handles the head of the wikicode being "{{":
// it may turn out to be a template ("{{foo}}"), a triple-brace argument
// ("{{{foo}}}"), or neither, in which case the opening braces degrade to
// literal text (spec §4.5).
func (t *Tokenizer) parseTemplateOrArgument() error {
	t.head += 2
	braces := 2
	for t.read(0).eq('{') {
		t.head++
		braces++
	}
	t.push(0)

	for braces > 0 {
		switch {
		case braces == 1:
			t.writeTextThenStack("{")
			return nil
		case braces == 2:
			if err := t.parseTemplate(); err != nil {
				t.writeTextThenStack("{{")
				return nil
			}
			braces = 0
		default:
			if err := t.parseArgument(); err == nil {
				braces -= 3
			} else if err2 := t.parseTemplate(); err2 == nil {
				braces -= 2
			} else {
				t.writeTextThenStack(repeat("{", braces))
				return nil
			}
		}
		if braces > 0 {
			t.head++
		}
	}

	t.writeAll(t.pop(false))
	if t.context().Has(FailNext) {
		t.setContext(t.context() ^ FailNext)
	}
	return nil
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// parseTemplate parses a template at the head of the wikicode.
func (t *Tokenizer) parseTemplate() error {
	reset := t.head
	title, _, err := t.parse(TemplateName, true)
	if err != nil {
		t.head = reset
		return err
	}
	t.writeFirst(TemplateOpen{})
	t.writeAll(title)
	t.write(TemplateClose{})
	return nil
}

// parseArgument parses a "{{{name|default}}}" argument at the head of the
// wikicode.
func (t *Tokenizer) parseArgument() error {
	reset := t.head
	arg, _, err := t.parse(ArgumentName, true)
	if err != nil {
		t.head = reset
		return err
	}
	t.writeFirst(ArgumentOpen{})
	t.writeAll(arg)
	t.write(ArgumentClose{})
	return nil
}

// handleTemplateParam handles a "|" separator inside a template.
func (t *Tokenizer) handleTemplateParam() {
	c := t.context()
	switch {
	case c.Has(TemplateName):
		t.setContext(t.context() ^ TemplateName)
	case c.Has(TemplateParamValue):
		t.setContext(t.context() ^ TemplateParamValue)
	case c.Has(TemplateParamKey):
		t.writeAll(t.pop(true))
	}
	t.setContext(t.context() | TemplateParamKey)
	t.write(TemplateParamSeparator{})
	t.push(t.context())
}

// handleTemplateParamValue handles the "=" that separates a template
// parameter's key from its value.
func (t *Tokenizer) handleTemplateParamValue() {
	t.writeAll(t.pop(true))
	t.setContext(t.context() ^ TemplateParamKey)
	t.setContext(t.context() | TemplateParamValue)
	t.write(TemplateParamEquals{})
}

// handleTemplateEnd handles "}}" closing a template.
func (t *Tokenizer) handleTemplateEnd() []Token {
	if t.context().Has(TemplateParamKey) {
		t.writeAll(t.pop(true))
	}
	t.head++
	return t.pop(false)
}

// handleArgumentSeparator handles the "|" between an argument's name and
// its default value.
func (t *Tokenizer) handleArgumentSeparator() {
	t.setContext(t.context() ^ ArgumentName)
	t.setContext(t.context() | ArgumentDefault)
	t.write(ArgumentSeparator{})
}

// handleArgumentEnd handles "}}}" closing an argument.
func (t *Tokenizer) handleArgumentEnd() []Token {
	t.head += 2
	return t.pop(false)
}
