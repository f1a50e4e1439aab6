package console

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct fg:bg:flags styles
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)
)

// Parse renders tags as ANSI sequences when colors are enabled and strips
// them otherwise.
//   - {{_Tag_}} : semantic style lookup
//   - {{|fg:bg:flags|}} : direct style, {{|-|}} resets
func Parse(text string) string {
	if !ColorEnabled() {
		return Strip(text)
	}
	return ToANSI(text)
}

// Sprintf formats and then parses tags.
func Sprintf(format string, a ...any) string {
	return Parse(fmt.Sprintf(format, a...))
}

// ToANSI converts all tags to escape sequences regardless of TTY state.
// Unknown semantic tags are removed.
func ToANSI(text string) string {
	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		name := normalizeTag(match[3 : len(match)-3])
		if style, ok := semanticStyles[name]; ok {
			return styleToANSI(style)
		}
		return ""
	})

	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		return styleToANSI(strings.ToLower(match[3 : len(match)-3]))
	})
}

// Strip removes all semantic and direct tags from text.
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	return directRegex.ReplaceAllString(text, "")
}

func normalizeTag(name string) string {
	return strings.ToLower(strings.Trim(name, "_"))
}

// styleToANSI parses fg:bg:flags and returns the matching ANSI codes.
func styleToANSI(style string) string {
	if style == "-" {
		return CodeReset
	}

	parts := strings.Split(style, ":")
	var codes strings.Builder

	if len(parts) > 0 && parts[0] != "" && parts[0] != "-" {
		codes.WriteString(colorSequence(parts[0], false))
	}
	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		codes.WriteString(colorSequence(parts[1], true))
	}
	if len(parts) > 2 {
		for _, flag := range parts[2] {
			switch flag {
			case 'b':
				codes.WriteString(CodeBold)
			case 'd':
				codes.WriteString(CodeDim)
			case 'u':
				codes.WriteString(CodeUnderline)
			}
		}
	}
	return codes.String()
}

func colorSequence(name string, background bool) string {
	if idx, ok := colorIndex[name]; ok {
		name = idx
	}
	color := preferredProfile.Color(name)
	if color == nil {
		return ""
	}
	seq := color.Sequence(background)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
