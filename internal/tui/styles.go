package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
	colorViolet    = lipgloss.Color("#b86ee0")
	colorRed       = lipgloss.Color("#e03a3a")
	colorEmber     = lipgloss.Color("#ff6b35")
	colorGreen     = lipgloss.Color("#3ab06a")
	colorSand      = lipgloss.Color("#c9b458")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	alertStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)

	sessionStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	sessionSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				PaddingLeft(2)

	sessionDateStyle = lipgloss.NewStyle().
				Foreground(colorDarkGray).
				PaddingLeft(2)

	pendingStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorEntryStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

const logo = `
  ███████╗██████╗  █████╗ ██╗   ██╗██████╗ ███████╗
  ██╔════╝██╔══██╗██╔══██╗██║   ██║██╔══██╗██╔════╝
  █████╗  ██████╔╝███████║██║   ██║██║  ██║█████╗
  ██╔══╝  ██╔══██╗██╔══██║██║   ██║██║  ██║██╔══╝
  ██║     ██║  ██║██║  ██║╚██████╔╝██████╔╝███████╗
  ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚══════╝
`
