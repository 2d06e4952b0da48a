// Package tagdefs answers whether a given (lowercased) HTML/wikitext tag
// name admits nested markup in its body. It leans on golang.org/x/net/html's
// atom table to recognize standard HTML elements and adds the handful of
// MediaWiki-specific tags that are documented as raw-text containers.
package tagdefs

import "golang.org/x/net/html/atom"

// rawtextAtoms is the fixed HTML5 set of "raw text"/"RCDATA" elements whose
// body is never parsed as markup: script, style, textarea, title.
var rawtextAtoms = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Textarea: true,
	atom.Title:    true,
}

// nonParsable lists MediaWiki tag names (already lowercased; some, such as
// pre, math and source, are also HTML5 atoms) whose body content is never
// re-scanned for
// wikicode markup: it is taken and emitted verbatim by a downstream
// renderer.
var nonParsable = map[string]bool{
	"nowiki":          true,
	"pre":             true,
	"math":            true,
	"source":          true,
	"syntaxhighlight": true,
	"score":           true,
	"charinsert":      true,
	"graph":           true,
}

// IsParsable reports whether name's body should be rescanned for nested
// wikicode constructs. Unknown names default to parsable, matching
// MediaWiki's own liberal treatment of arbitrary/extension tag names.
func IsParsable(name string) bool {
	if nonParsable[name] {
		return false
	}
	if rawtextAtoms[atom.Lookup([]byte(name))] {
		return false
	}
	return true
}
