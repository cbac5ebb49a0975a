package airtable

import "strings"

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote renders s as a double-quoted formula string literal.
func Quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// Field renders a field reference such as {Program Length}.
func Field(name string) string {
	return "{" + name + "}"
}

// Or joins terms with OR(); a single term is returned unchanged.
func Or(terms ...string) string {
	return join("OR", terms)
}

// And joins terms with AND(); a single term is returned unchanged.
func And(terms ...string) string {
	return join("AND", terms)
}

func join(fn string, terms []string) string {
	switch len(terms) {
	case 0:
		return ""
	case 1:
		return terms[0]
	default:
		return fn + "(" + strings.Join(terms, ", ") + ")"
	}
}
