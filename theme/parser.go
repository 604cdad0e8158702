package theme

import (
	"strconv"
	"strings"
	"time"
)

// findBlockEnd finds the end of a CSS block (the matching closing brace)
func findBlockEnd(content string, startPos int) int {
	if startPos >= len(content) {
		return len(content)
	}

	openBrace := strings.Index(content[startPos:], "{")
	if openBrace == -1 {
		return len(content)
	}
	openBrace += startPos

	depth := 1
	pos := openBrace + 1
	for pos < len(content) && depth > 0 {
		switch content[pos] {
		case '{':
			depth++
		case '}':
			depth--
		}
		pos++
	}

	return pos
}

// ParseHeader parses the metadata comment written by GenerateThemeCSS.
// Fields that are missing or malformed are left at their zero value.
func ParseHeader(cssContent string) Header {
	var header Header

	startIdx := strings.Index(cssContent, "/*")
	if startIdx == -1 {
		return header
	}

	endIdx := strings.Index(cssContent[startIdx:], "*/")
	if endIdx == -1 {
		return header
	}

	metadataBlock := cssContent[startIdx+2 : startIdx+endIdx]
	lines := strings.Split(metadataBlock, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Generated by":
			header.Generator = value
		case "Generated at":
			if t, err := time.Parse(TimestampLayout, value); err == nil {
				header.GeneratedAt = t
			} else if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
				header.GeneratedAt = t
			}
		case "Seed color":
			header.Seed = value
		case "Contrast":
			if c, err := strconv.ParseFloat(value, 64); err == nil {
				header.Contrast = c
				header.HasContrast = true
			}
		}
	}

	return header
}

// ParseThemeBlock returns the declarations of the first @theme block in
// document order. Comments inside the block are skipped.
func ParseThemeBlock(cssContent string) []Variable {
	start := strings.Index(cssContent, "@theme")
	if start == -1 {
		return nil
	}
	open := strings.Index(cssContent[start:], "{")
	if open == -1 {
		return nil
	}
	open += start
	end := findBlockEnd(cssContent, start)

	body := cssContent[open+1 : end-1]
	var vars []Variable
	for _, stmt := range strings.Split(stripComments(body), ";") {
		name, value, ok := strings.Cut(stmt, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if !strings.HasPrefix(name, "--") {
			continue
		}
		vars = append(vars, Variable{Name: name, Value: strings.TrimSpace(value)})
	}

	return vars
}

func stripComments(content string) string {
	var builder strings.Builder
	for {
		start := strings.Index(content, "/*")
		if start == -1 {
			builder.WriteString(content)
			break
		}
		builder.WriteString(content[:start])
		end := strings.Index(content[start:], "*/")
		if end == -1 {
			break
		}
		content = content[start+end+2:]
	}
	return builder.String()
}
