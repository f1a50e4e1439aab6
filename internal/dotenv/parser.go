package dotenv

import (
	"fmt"
	"regexp"
	"strings"

	"IdeaEnv/internal/envmap"
)

// space is whitespace including the vertical tab, which RE2's \s leaves out.
const space = `[\s\v]`

var (
	// lineRegex matches one KEY=value definition.
	// Groups: 1 = key, 2 = raw value (may be empty).
	// Value alternatives are tried in order: single quoted, double quoted,
	// unquoted up to '#'. Go's leftmost-first matching picks the same
	// alternative a backtracking engine would, so a quoted value runs to the
	// last quote that still leaves only an optional comment behind it.
	lineRegex = regexp.MustCompile(
		`^` +
			`(?:export` + space + `+)?` + // optional export
			`([\w.]+)` + // key
			`(?:` + space + `*=` + space + `*|:` + space + `+?)` + // separator
			`(` +
			`'(?:'|[^'])*'` + // single quoted value
			`|` +
			`"(?:"|[^"])*"` + // double quoted value
			`|` +
			`[^#\n]+` + // unquoted value
			`)?` +
			`(?:` + space + `*#.*)?` + // optional comment
			`$`,
	)

	// blankRegex matches lines that are empty or only a comment.
	blankRegex = regexp.MustCompile(`^` + space + `*(?:#.*)?$`)

	// escapedCharRegex matches a backslash escape of anything but '$'.
	escapedCharRegex = regexp.MustCompile(`\\([^$])`)

	// variableRegex matches $VAR and ${VAR}, optionally escaped.
	// Groups: 1 = backslash, 2 = "$", 3 = name with braces, 4 = bare name.
	// The match is case-insensitive while the lookup of the bare name is not.
	variableRegex = regexp.MustCompile(`(?i)(\\)?(\$)(\{?([A-Z0-9_]+)\}?)`)
)

// Warning describes a line that did not match the expected format.
type Warning struct {
	Line int    // 1-based line number
	Text string // the raw line
}

func (w Warning) String() string {
	return fmt.Sprintf("Line %d %q doesn't match format", w.Line, w.Text)
}

// Option configures a Parser.
type Option func(*Parser)

// WithEnv sets the ambient environment used to resolve variables that are
// not defined earlier in the file. A nil Lookuper disables the fallback.
func WithEnv(env Lookuper) Option {
	return func(p *Parser) {
		if env == nil {
			env = emptyEnv{}
		}
		p.env = env
	}
}

// Parser turns dotenv content into an envmap.Map.
type Parser struct {
	env Lookuper
}

// NewParser returns a Parser that falls back to the process environment
// unless configured otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{env: OSEnv{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for NewParser(opts...).Parse(content).
func Parse(content string, opts ...Option) (*envmap.Map, []Warning) {
	return NewParser(opts...).Parse(content)
}

// Parse reads content line by line in a single forward pass.
// Later definitions of a key overwrite earlier ones.
func (p *Parser) Parse(content string) (*envmap.Map, []Warning) {
	env := envmap.New()
	var warnings []Warning

	for i, line := range splitLines(content) {
		m := lineRegex.FindStringSubmatch(line)
		if m == nil {
			if !blankRegex.MatchString(line) {
				warnings = append(warnings, Warning{Line: i + 1, Text: line})
			}
			continue
		}
		env.Set(m[1], p.value(m[2], env))
	}

	return env, warnings
}

// value post-processes a raw value: trim, unquote, unescape, substitute.
func (p *Parser) value(raw string, env *envmap.Map) string {
	value := strings.TrimSpace(raw)

	var quote byte
	if n := len(value); n >= 2 && (value[0] == '\'' || value[0] == '"') && value[n-1] == value[0] {
		quote = value[0]
		value = value[1 : n-1]
	}

	// Keep \$ so escaped variables survive until substitution
	if quote == '"' {
		value = escapedCharRegex.ReplaceAllString(value, "${1}")
	}

	if quote != '\'' {
		value = p.substitute(value, env)
	}
	return value
}

// substitute replaces each variable reference found in value.
// All references are collected before any replacement happens, and each one
// replaces every occurrence of its token text.
func (p *Parser) substitute(value string, env *envmap.Map) string {
	for _, parts := range variableRegex.FindAllStringSubmatch(value, -1) {
		escaped, dollar, braced, name := parts[1], parts[2], parts[3], parts[4]

		var token, replacement string
		if escaped != "" {
			token = escaped + dollar + braced
			replacement = dollar + braced
		} else {
			token = dollar + braced
			replacement = p.lookup(name, env)
		}
		value = strings.ReplaceAll(value, token, replacement)
	}
	return value
}

// lookup resolves name against earlier entries, then the ambient environment.
func (p *Parser) lookup(name string, env *envmap.Map) string {
	if v, ok := env.Lookup(name); ok {
		return v
	}
	if v, ok := p.env.LookupEnv(name); ok {
		return v
	}
	return ""
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
