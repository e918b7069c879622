package gen

import "strings"

// wrapWidth is the column budget for generated declarations.
const wrapWidth = 80

// WrapUnion re-flows a union-shaped declaration that exceeds the column
// budget into an aligned multi-line form, breaking at top-level union
// member separators:
//
//	export type T =
//	  | 'A'
//	  | 'B';
//
// The function is idempotent: already-wrapped input is first collapsed
// back to one logical line, so re-wrapping produces identical output.
func WrapUnion(text string) string {
	return wrapAt(text, wrapWidth)
}

func wrapAt(text string, width int) string {
	line := collapseWrapped(text)
	if len(line) <= width {
		return line
	}
	eq := indexTopLevel(line, " = ")
	if eq < 0 {
		return line
	}
	head, rhs := line[:eq+2], line[eq+3:]
	rhs, terminated := strings.CutSuffix(rhs, ";")
	members := splitTopLevel(rhs, " | ")
	if len(members) < 2 {
		return line
	}
	var b strings.Builder
	b.WriteString(head)
	for i, m := range members {
		b.WriteString("\n  | ")
		b.WriteString(m)
		if terminated && i == len(members)-1 {
			b.WriteString(";")
		}
	}
	return b.String()
}

// collapseWrapped joins a previously wrapped declaration back into one
// logical line. Single-line input passes through untouched.
func collapseWrapped(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	line := strings.Join(lines, " ")
	return strings.Replace(line, "= | ", "= ", 1)
}

// indexTopLevel returns the index of the first occurrence of sep that
// sits outside any bracket pair or string literal, or -1.
func indexTopLevel(s, sep string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == '<':
			depth++
		case c == '>':
			// An arrow "=>" is not a generic close.
			if i > 0 && s[i-1] != '=' {
				depth--
			}
		}
		if quote == 0 && depth == 0 && strings.HasPrefix(s[i:], sep) {
			return i
		}
	}
	return -1
}

// splitTopLevel splits s at every occurrence of sep that sits outside
// bracket pairs and string literals.
func splitTopLevel(s, sep string) []string {
	var parts []string
	for {
		i := indexTopLevel(s, sep)
		if i < 0 {
			parts = append(parts, s)
			return parts
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
}
