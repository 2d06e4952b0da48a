package wikitext

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.

func TestIssues(t *testing.T) { TestingT(t) }

type IssueTestSuite struct{}

var _ = Suite(&IssueTestSuite{})

// An unterminated tag whose body opens an unterminated template must
// degrade to text instead of panicking.
func (s *IssueTestSuite) TestUnterminatedTagDoesNotPanic(c *C) {
	toks := Tokenize("<ref>{{incomplete")
	c.Check(toks, Not(HasLen), 0)
}

func (s *IssueTestSuite) TestDeeplyNestedTemplatesDegradeInsteadOfPanicking(c *C) {
	nested := ""
	for i := 0; i < 60; i++ {
		nested += "{{"
	}
	toks := Tokenize(nested)
	c.Check(toks, Not(HasLen), 0)
}

func (s *IssueTestSuite) TestHeadingRightmostClosureWins(c *C) {
	toks := Tokenize("===x==")
	var start HeadingStart
	found := false
	for _, tok := range toks {
		if h, ok := tok.(HeadingStart); ok {
			start = h
			found = true
		}
	}
	c.Assert(found, Equals, true)
	c.Check(start.Level, Equals, 2)
}

func (s *IssueTestSuite) TestCaseInsensitiveTagCloseMatch(c *C) {
	toks := Tokenize("<ref>body</REF>")
	hasClose := false
	for _, tok := range toks {
		if _, ok := tok.(TagCloseClose); ok {
			hasClose = true
		}
	}
	c.Check(hasClose, Equals, true)
}
