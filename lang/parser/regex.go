package parser

import (
	"regexp"
	"sync"
)

// RegexCell is a one-time, thread-safe memoization cell for the compiled
// form of a regex literal used with the '~' match operator. Spec section
// 4.3/5 requires this lazy compilation to be safe under concurrent sharing
// of an otherwise-immutable Expression, so compilation is guarded by
// sync.Once rather than a plain nil-check.
type RegexCell struct {
	once sync.Once
	re   *regexp.Regexp
	err  error
}

// Compile returns the compiled regexp for pattern, compiling it on first
// call and caching the result (or error) for all subsequent calls.
func (c *RegexCell) Compile(pattern string) (*regexp.Regexp, error) {
	c.once.Do(func() {
		c.re, c.err = regexp.Compile(pattern)
	})

	return c.re, c.err
}
