// Package classes assembles CSS class attributes.
package classes

import "strings"

// Contributor adds class tokens to a component, for example an intent.
type Contributor interface {
	ClassNames() []string
}

// Classes is an ordered set of class tokens.
type Classes struct {
	tokens []string
}

// New returns a class list seeded with the given values.
func New(values ...string) Classes {
	var c Classes
	for _, value := range values {
		c.Push(value)
	}
	return c
}

// Push appends every whitespace-separated token in value that is not already
// present. An empty value adds nothing.
func (c *Classes) Push(value string) {
	for _, token := range strings.Fields(value) {
		if !c.Contains(token) {
			c.tokens = append(c.tokens, token)
		}
	}
}

// Extend appends the tokens of a contributor. A nil contributor adds nothing.
func (c *Classes) Extend(contributor Contributor) {
	if contributor == nil {
		return
	}
	for _, value := range contributor.ClassNames() {
		c.Push(value)
	}
}

// Contains reports whether token is already in the list.
func (c Classes) Contains(token string) bool {
	for _, existing := range c.tokens {
		if existing == token {
			return true
		}
	}
	return false
}

// Tokens returns a copy of the class tokens in insertion order.
func (c Classes) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// String joins the tokens for use as a class attribute.
func (c Classes) String() string {
	return strings.Join(c.tokens, " ")
}
