package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// words splits s into lowercase word segments. Boundaries are runs of
// non-alphanumeric runes and lower-to-upper transitions inside a run.
func words(s string) []string {
	var out []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		prev = r
	}
	flush()

	return out
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	return strings.Join(words(s), "-")
}

// ToSnake converts s to snake_case.
func ToSnake(s string) string {
	return strings.Join(words(s), "_")
}

// ToCamel converts s to camelCase.
func ToCamel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(ws[0])
	for _, w := range ws[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascal converts s to PascalCase.
func ToPascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// Title converts s to Title Case using Unicode casing rules.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// TrimLower trims surrounding whitespace and lowercases the rest.
func TrimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimUpper trims surrounding whitespace and uppercases the rest.
func TrimUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
