package wikitext

import (
	"strings"
	"testing"
)

// FuzzTokenize directly fuzzes the tokenizer to find crashes and nil
// tokens. It does not check that the token sequence reconstructs its input.
func FuzzTokenize(f *testing.F) {
	f.Add("plain text")
	f.Add("")

	// Templates and arguments
	f.Add("{{foo}}")
	f.Add("{{foo|bar}}")
	f.Add("{{foo|bar=baz}}")
	f.Add("{{{foo}}}")
	f.Add("{{{foo|default}}}")
	f.Add("{{foo")
	f.Add("{{{foo")
	f.Add("{{{{foo}}}}")
	f.Add("{{{{{foo}}}}}")
	f.Add("{{foo|{{bar}}={{baz|{{spam}}}}}}")

	// Wikilinks
	f.Add("[[foo]]")
	f.Add("[[foo|bar]]")
	f.Add("[[foo")
	f.Add("[[foo [[bar]] baz]]")

	// Headings
	f.Add("=x=")
	f.Add("==x==")
	f.Add("======x======")
	f.Add("=======x=======")
	f.Add("===x==")
	f.Add("==no close")
	f.Add("text\n==Heading==\nmore")

	// Entities
	f.Add("&amp;")
	f.Add("&#65;")
	f.Add("&#x1F600;")
	f.Add("&bogus;")
	f.Add("&amp")
	f.Add("&#0;")

	// Comments
	f.Add("<!-- hello -->")
	f.Add("<!-- never closes")
	f.Add("<!---->")
	f.Add("<!-- {{foo}} -->")

	// Tags
	f.Add("<ref>body</ref>")
	f.Add("<ref name=\"foo\">body</ref>")
	f.Add("<ref name=foo>body</ref>")
	f.Add("<br/>")
	f.Add("<ref>body</notref>")
	f.Add("<ref>body")
	f.Add("<nowiki>{{foo}}</nowiki>")
	f.Add("<pre><ref>x</ref></pre>")

	// Mixed and adversarial
	f.Add("{{foo|[[bar]]|==baz==}}")
	f.Add("[[foo|{{bar}}]]")
	f.Add("<ref>{{foo|[[bar]]}}</ref>")
	f.Add(strings.Repeat("{{", 200) + strings.Repeat("}}", 200))
	f.Add(strings.Repeat("=", 50) + "x" + strings.Repeat("=", 50))
	f.Add("{{{{{{{{{{x}}}}}}}}}}")

	f.Fuzz(func(t *testing.T, input string) {
		toks, _ := TokenizeWithStats(input)
		for _, tok := range toks {
			if tok == nil {
				t.Error("tokenizer returned a nil token")
			}
		}
	})
}
