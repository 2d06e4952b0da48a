package wikitext

// Tokenizer is a single-threaded, single-use recursive-descent scanner
// over pre-segmented wikicode (spec §2, §5). Tokenize and TokenizeWithStats
// create a fresh instance for each call; an instance must not be reused or
// shared across goroutines mid-call.
type Tokenizer struct {
	segments []seg
	head     int

	stack     []*frame
	global    Context
	depth     int
	peakDepth int
	cycles    int
}

// Stats reports whether the tokenizer's two resource caps were ever hit
// during a call, for callers that want to know their input was large or
// pathological enough to force constructs to degrade to literal text.
type Stats struct {
	MaxDepthHit  bool
	MaxCyclesHit bool
}

func (t *Tokenizer) note(stats *Stats) {
	if stats == nil {
		return
	}
	if t.peakDepth >= MaxDepth {
		stats.MaxDepthHit = true
	}
	if t.cycles >= MaxCycles {
		stats.MaxCyclesHit = true
	}
}

// Tokenize builds a flat, ordered token sequence from a string of
// wikicode. It and TokenizeWithStats are the public entry points into the
// scanner.
func Tokenize(text string) []Token {
	toks, _ := TokenizeWithStats(text)
	return toks
}

// TokenizeWithStats is Tokenize plus a report of whether MaxDepth or
// MaxCycles were exhausted anywhere during the call.
func TokenizeWithStats(text string) ([]Token, Stats) {
	t := &Tokenizer{segments: splitSegments(text)}
	toks, _, err := t.parse(0, true)
	if err != nil {
		// The root context carries none of the `fail` flags, so reaching
		// END always pops cleanly; a route-failure here would mean the
		// scanner's invariants were violated, not that input was bad.
		panic(wrapf("Tokenize", err, "root route failed at head=%d", t.head))
	}
	var stats Stats
	t.note(&stats)
	return toks, stats
}

// read returns the segment at head+delta without advancing head.
// Negative indices return the START sentinel; indices at or past the end
// return the END sentinel.
func (t *Tokenizer) read(delta int) seg {
	idx := t.head + delta
	if idx < 0 {
		return seg{kind: segStart}
	}
	if idx >= len(t.segments) {
		return seg{kind: segEnd}
	}
	return t.segments[idx]
}

// readStrict is read(delta) with strict=true: reading past the end fails
// the current route instead of returning END.
func (t *Tokenizer) readStrict(delta int) (seg, error) {
	s := t.read(delta)
	if s.isEnd() {
		return s, t.failRoute()
	}
	return s, nil
}

// parse is the main dispatch loop (spec §4.4). It pushes a new frame
// unless push is false (used when a tag body is entered without a new
// frame), then loops over segments until a terminal marker for context
// closes the frame. level is only meaningful when the frame closes via a
// heading closure; all other callers ignore it.
func (t *Tokenizer) parse(context Context, push bool) (tokens []Token, level int, err error) {
	if push {
		t.push(context)
	}
	for {
		if t.depth > t.peakDepth {
			t.peakDepth = t.depth
		}
		this := t.read(0)
		cur := t.context()

		if cur.Has(unsafe) {
			if !t.verifySafe(this) {
				if t.context().Has(doubleFail) {
					t.pop(false)
				}
				return nil, 0, t.failRoute()
			}
			cur = t.context()
		}

		if !this.isMarker() && !this.isBoundary() {
			t.writeText(this.text)
			t.head++
			continue
		}

		if this.isEnd() {
			if cur.Has(fail) {
				if cur.Has(doubleFail) {
					t.pop(false)
				}
				return nil, 0, t.failRoute()
			}
			return t.pop(false), 0, nil
		}

		next := t.read(1)

		switch {
		case cur.Has(Comment):
			if this.eq('-') && next.eq('-') && t.read(2).eq('>') {
				t.head += 2
				return t.pop(false), 0, nil
			}
			t.writeText(this.text)

		case this.eq('{') && next.eq('{'):
			if t.canRecurse() && !t.top().raw {
				if err := t.parseTemplateOrArgument(); err != nil {
					return nil, 0, err
				}
			} else {
				t.writeText("{")
			}

		case this.eq('|') && cur.Has(Template):
			t.handleTemplateParam()

		case this.eq('=') && cur.Has(TemplateParamKey):
			t.handleTemplateParamValue()

		case this.eq('}') && next.eq('}') && cur.Has(Template):
			return t.handleTemplateEnd(), 0, nil

		case this.eq('|') && cur.Has(ArgumentName):
			t.handleArgumentSeparator()

		case this.eq('}') && next.eq('}') && cur.Has(Argument):
			if t.read(2).eq('}') {
				return t.handleArgumentEnd(), 0, nil
			}
			t.writeText("}")

		case this.eq('[') && next.eq('['):
			if !cur.Has(WikilinkTitle) && t.canRecurse() && !t.top().raw {
				if err := t.parseWikilink(); err != nil {
					return nil, 0, err
				}
			} else {
				t.writeText("[")
			}

		case this.eq('|') && cur.Has(WikilinkTitle):
			t.handleWikilinkSeparator()

		case this.eq(']') && next.eq(']') && cur.Has(Wikilink):
			return t.handleWikilinkEnd(), 0, nil

		case this.eq('=') && !t.global.Has(globalHeading):
			prev := t.read(-1)
			if prev.isStart() || prev.eq('\n') {
				if err := t.parseHeading(); err != nil {
					return nil, 0, err
				}
			} else {
				t.writeText("=")
			}

		case this.eq('=') && cur.Has(Heading):
			toks, lvl, err := t.handleHeadingEnd()
			return toks, lvl, err

		case this.eq('\n') && cur.Has(Heading):
			return nil, 0, t.failRoute()

		case this.eq('&'):
			t.parseEntity()

		case this.eq('<') && next.eq('!'):
			if t.read(2).eq('-') && t.read(3).eq('-') {
				t.parseComment()
			} else {
				t.writeText(this.text)
			}

		case this.eq('<') && next.eq('/') && cur.Has(TagBody):
			t.handleTagOpenClose()

		case this.eq('<'):
			if !cur.Has(TagClose) && t.canRecurse() && !t.top().raw {
				if err := t.parseTag(); err != nil {
					return nil, 0, err
				}
			} else {
				t.writeText("<")
			}

		case this.eq('>') && cur.Has(TagClose):
			toks, err := t.handleTagCloseClose()
			return toks, 0, err

		default:
			t.writeText(this.text)
		}
		t.head++
	}
}
