package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
	} else {
		b.WriteString("-")
	}

	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))

	return appStyle.Render(b.String())
}
