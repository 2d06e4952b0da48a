// Package wikitext implements a tokenizer for MediaWiki-flavored wikicode.
//
// It consumes a string of wikicode and produces a flat, ordered sequence
// of Token values that a downstream parser can fold into a tree. The
// scanner is speculative and backtracking: constructs like templates,
// arguments, wikilinks, headings, HTML entities, HTML comments, and HTML
// tags may nest arbitrarily and must silently degrade to literal text
// whenever their tentative structure turns out to be invalid.
//
//	toks := wikitext.Tokenize("{{foo|bar}}")
//	for _, tok := range toks {
//	    fmt.Printf("%#v\n", tok)
//	}
//
// Building the token sequence back into a tree, rendering it to HTML, and
// the HTML-entity name table and tag-parsability predicate that this
// package consults are all the concern of other packages: see
// internal/entities and internal/tagdefs for the two lookup tables, and
// cmd/wikitokenize for a convenience CLI over Tokenize.
package wikitext
