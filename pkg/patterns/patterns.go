// Package patterns compiles rule patterns written the way a Vite config
// writes them: either a bare expression or a /body/flags literal, with
// ECMAScript regular expression semantics.
package patterns

import (
	"strings"
	"time"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single filename test
const DefaultMatchTimeout = 100 * time.Millisecond

// Pattern is a compiled ECMAScript regular expression. It satisfies
// types.Pattern.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// MatchString reports whether s contains a match. A match that times out
// counts as no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	if err != nil {
		logger := logging.GetLogger("patterns")
		logger.Warn().
			Err(err).
			Str("pattern", p.source).
			Str("input", s).
			Msg("Pattern match failed, treating as no match")
		return false
	}
	return ok
}

// String returns the pattern as it was written
func (p *Pattern) String() string {
	return p.source
}

// Compile parses expr and compiles it with the default timeout
func Compile(expr string) (*Pattern, error) {
	return CompileWithTimeout(expr, DefaultMatchTimeout)
}

// MustCompile is like Compile but panics on error
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileWithTimeout parses expr, which is either a bare expression or a
// /body/flags literal. The i, m and s flags map to regexp2 options; g, y,
// u and d only affect iteration in JavaScript and are ignored.
func CompileWithTimeout(expr string, timeout time.Duration) (*Pattern, error) {
	if expr == "" {
		return nil, errors.New(errors.ErrPatternInvalid, "pattern is empty")
	}

	body, flags, _ := splitLiteral(expr)
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		}
	}

	// ECMAScript mode only combines with IgnoreCase and Multiline
	if opts&regexp2.Singleline != 0 {
		opts &^= regexp2.ECMAScript
	}

	re, err := regexp2.Compile(body, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid pattern %s", expr).
			WithDetail("pattern", expr)
	}
	re.MatchTimeout = timeout

	return &Pattern{source: expr, re: re}, nil
}

// literalFlags are the flags a JavaScript regex literal may carry
const literalFlags = "dgimsuy"

// splitLiteral recognises /body/flags. Anything else, including a leading
// slash followed by characters that are not literal flags, is a bare body.
// A slash-delimited path such as /assets/ therefore reads as the literal
// body assets; an escaped \/assets\/ stays a bare pattern.
func splitLiteral(expr string) (body, flags string, ok bool) {
	if len(expr) < 2 || expr[0] != '/' {
		return expr, "", false
	}
	end := strings.LastIndex(expr, "/")
	if end <= 0 {
		return expr, "", false
	}
	flags = expr[end+1:]
	for _, f := range flags {
		if !strings.ContainsRune(literalFlags, f) {
			return expr, "", false
		}
	}
	return expr[1:end], flags, true
}
