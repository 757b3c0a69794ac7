package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/fraude/realm/internal/chat"
	"codeberg.org/fraude/realm/internal/markup"
)

var inlineCodeStyle = lipgloss.NewStyle().
	Foreground(colorWhite).
	Background(colorDarkGray)

// formatter renders parsed message nodes for the viewport. Code blocks
// go through glamour; everything else is styled directly. Rendering
// never fails: glamour errors fall back to the literal text.
type formatter struct {
	renderer *glamour.TermRenderer
	width    int
}

func newFormatter(width int) *formatter {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		renderer = nil
	}

	return &formatter{renderer: renderer, width: width}
}

// renders one conversation entry
func (f *formatter) formatEntry(e chat.Entry, theme Theme) string {
	switch e.Kind {
	case chat.EntryUser:
		label := theme.UserStyle.Bold(true).Render("You")
		// user content is literal: no markup interpretation
		body := theme.UserStyle.Render(markup.RenderPlain(markup.ParseUser(e.Content)))
		return label + "\n" + body

	case chat.EntryBot:
		entryTheme := themeByName(e.Mode)
		label := lipgloss.NewStyle().Bold(true).Foreground(entryTheme.Accent).Render(personaName(e.Mode))
		return label + "\n" + f.formatBlocks(markup.ParseBot(e.Content), entryTheme)

	case chat.EntryPending:
		return pendingStyle.Render(e.Content)

	case chat.EntryError:
		return errorEntryStyle.Render(e.Content)

	default:
		return e.Content
	}
}

// renders bot message blocks
func (f *formatter) formatBlocks(blocks []markup.Block, theme Theme) string {
	var b strings.Builder

	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}

		switch block := block.(type) {
		case markup.CodeBlock:
			b.WriteString(f.formatCode(block))
		case markup.Bullet:
			b.WriteString(theme.BotStyle.Render("• " + renderSpans(block.Spans)))
		case markup.Line:
			b.WriteString(theme.BotStyle.Render(renderSpans(block.Spans)))
		}
	}

	return b.String()
}

// renders a fenced block through glamour, falling back to raw text
func (f *formatter) formatCode(block markup.CodeBlock) string {
	if f.renderer != nil {
		source := fmt.Sprintf("```%s\n%s\n```", block.Lang, block.Body)
		if out, err := f.renderer.Render(source); err == nil {
			return strings.Trim(out, "\n")
		}
	}

	return inlineCodeStyle.Render(block.Body)
}

// renders inline spans; code spans get the inline code style
func renderSpans(spans []markup.Span) string {
	var b strings.Builder

	for _, span := range spans {
		switch span := span.(type) {
		case markup.Text:
			b.WriteString(string(span))
		case markup.Code:
			b.WriteString(inlineCodeStyle.Render(string(span)))
		}
	}

	return b.String()
}

// display name of the bot persona for a mode tag
func personaName(mode string) string {
	switch mode {
	case "lucifer":
		return "Lucifer"
	case "eren":
		return "Eren"
	default:
		return "Fraude"
	}
}
