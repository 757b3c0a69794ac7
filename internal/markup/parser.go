package markup

import (
	"strings"
)

// ParseUser turns user-authored content into literal lines. No markup
// is interpreted: whatever the user typed is displayed verbatim.
func ParseUser(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		blocks = append(blocks, Line{Spans: []Span{Text(line)}})
	}

	return blocks
}

// ParseBot turns bot-authored content into blocks, interpreting the
// constrained markup subset. Parsing is total: malformed input degrades
// to literal text, never an error.
func ParseBot(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))

			// find the closing fence
			end := -1
			for j := i + 1; j < len(lines); j++ {
				if strings.TrimSpace(lines[j]) == "```" {
					end = j
					break
				}
			}

			if end < 0 {
				// unterminated fence: the fence line is literal text
				blocks = append(blocks, Line{Spans: []Span{Text(line)}})
				continue
			}

			body := strings.TrimSpace(strings.Join(lines[i+1:end], "\n"))
			blocks = append(blocks, CodeBlock{Lang: lang, Body: body})
			i = end
			continue
		}

		if item, ok := bulletItem(trimmed); ok {
			blocks = append(blocks, Bullet{Spans: parseSpans(item)})
			continue
		}

		blocks = append(blocks, Line{Spans: parseSpans(line)})
	}

	return blocks
}

// recognizes "- item" and "• item" lines
func bulletItem(trimmed string) (string, bool) {
	for _, prefix := range []string{"- ", "• "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)), true
		}
	}

	return "", false
}

// splits a line on single-backtick pairs. An unmatched backtick keeps
// the remainder literal.
func parseSpans(line string) []Span {
	var spans []Span

	for {
		open := strings.IndexByte(line, '`')
		if open < 0 {
			break
		}

		length := strings.IndexByte(line[open+1:], '`')
		if length < 0 {
			break
		}

		if open > 0 {
			spans = append(spans, Text(line[:open]))
		}

		spans = append(spans, Code(line[open+1:open+1+length]))
		line = line[open+length+2:]
	}

	if line != "" || len(spans) == 0 {
		spans = append(spans, Text(line))
	}

	return spans
}

// RenderPlain flattens blocks back to unstyled text. It is the
// formatter's fallback, and re-parsing its output as a user message
// reproduces the same text.
func RenderPlain(blocks []Block) string {
	var b strings.Builder

	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}

		switch block := block.(type) {
		case Line:
			writeSpansPlain(&b, block.Spans)
		case Bullet:
			b.WriteString("• ")
			writeSpansPlain(&b, block.Spans)
		case CodeBlock:
			b.WriteString(block.Body)
		}
	}

	return b.String()
}

func writeSpansPlain(b *strings.Builder, spans []Span) {
	for _, span := range spans {
		switch span := span.(type) {
		case Text:
			b.WriteString(string(span))
		case Code:
			b.WriteString(string(span))
		}
	}
}
