// Package entities wraps the HTML named-character-reference table the
// tokenizer needs to validate entities like "&amp;" and "&nbsp;". It is a
// thin shim over golang.org/x/net/html rather than a hand-maintained table.
package entities

import (
	"strings"

	"golang.org/x/net/html"
)

// IsNamed reports whether name (with no leading "&" or trailing ";") is a
// recognized HTML named character reference.
func IsNamed(name string) bool {
	if name == "" {
		return false
	}
	escaped := "&" + name + ";"
	unescaped := html.UnescapeString(escaped)
	// A full match consumes the ";". A match on a legacy prefix only
	// ("amp" in "ampfoo") leaves the rest of the name and the ";" behind.
	return unescaped != escaped && !strings.HasSuffix(unescaped, name[len(name)-1:]+";")
}
