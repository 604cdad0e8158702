package theme

import "strings"

// KebabCase converts a camelCase or PascalCase identifier to kebab-case.
// A hyphen is inserted before every uppercase letter that follows a
// character other than '-', then the whole string is lowercased.
// Already kebab-cased input is returned unchanged.
func KebabCase(name string) string {
	var builder strings.Builder
	builder.Grow(len(name) + 4)

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && name[i-1] != '-' {
				builder.WriteByte('-')
			}
			c += 'a' - 'A'
		}
		builder.WriteByte(c)
	}

	return builder.String()
}

// VariableName returns the custom property name for a token in a variant,
// e.g. "--color-light-primary-container".
func VariableName(brightness Brightness, token string) string {
	return "--color-" + string(brightness) + "-" + KebabCase(token)
}
