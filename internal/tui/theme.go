package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/fraude/realm/internal/chat"
)

// Theme is a terminal palette with the voice of one of the realm's
// personas. Purely cosmetic: it never affects what is sent or stored
// beyond the persisted selection itself.
type Theme struct {
	Name        string
	Title       string
	Placeholder string
	Accent      lipgloss.Color
	UserStyle   lipgloss.Style
	BotStyle    lipgloss.Style
	Phrasing    chat.Phrasing
}

var themes = []Theme{
	{
		Name:        "fraude",
		Title:       "✧ Fraude's Realm ✧",
		Placeholder: "Cast your message into the magical realm...",
		Accent:      colorPurple,
		UserStyle:   lipgloss.NewStyle().Foreground(colorWhite),
		BotStyle:    lipgloss.NewStyle().Foreground(colorViolet),
		Phrasing: chat.Phrasing{
			Waiting: "Fraude weaves through your thoughts...",
			Retry: func(attempt, maxRetries int) string {
				return fmt.Sprintf("Retry %d/%d: The serpent gathers its thoughts...", attempt, maxRetries)
			},
		},
	},
	{
		Name:        "lucifer",
		Title:       "😈 Lucifer's Hell 😈",
		Placeholder: "What is it you truly desire?",
		Accent:      colorEmber,
		UserStyle:   lipgloss.NewStyle().Foreground(colorWhite),
		BotStyle:    lipgloss.NewStyle().Foreground(colorEmber),
		Phrasing: chat.Phrasing{
			Waiting: "The Devil is contemplating your words...",
			Retry: func(attempt, maxRetries int) string {
				return fmt.Sprintf("Retry %d/%d: The Devil doesn't give up easily...", attempt, maxRetries)
			},
		},
	},
	{
		Name:        "eren",
		Title:       "Path to Freedom",
		Placeholder: "What do you seek beyond these walls?",
		Accent:      colorSand,
		UserStyle:   lipgloss.NewStyle().Foreground(colorWhite),
		BotStyle:    lipgloss.NewStyle().Foreground(colorSand),
		Phrasing: chat.Phrasing{
			Waiting: "Eren considers your words with burning conviction...",
			Retry: func(attempt, maxRetries int) string {
				return fmt.Sprintf("Retry %d/%d: Breaking through the barriers...", attempt, maxRetries)
			},
		},
	},
}

// resolves a persisted theme name; unknown values fall back to the
// default theme
func themeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}

	return themes[0]
}

// returns the theme after the given one, cycling
func nextTheme(current Theme) Theme {
	for i, t := range themes {
		if t.Name == current.Name {
			return themes[(i+1)%len(themes)]
		}
	}

	return themes[0]
}
