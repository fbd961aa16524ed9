package ui

import (
	"strings"

	"github.com/yilmazgunalp/rusty-cron/colour"
)

// FormatFailure draws a red box around headline, followed by extraLines and
// then err, if there is one.
func FormatFailure(headline string, extraLines []string, err error) string {
	return formatBox(colour.Error, "🔥 ", headline, extraLines, err)
}

// FormatWarning is like FormatFailure, but yellow.
func FormatWarning(headline string, extraLines []string, err error) string {
	return formatBox(colour.Warning, "⚠️  ", headline, extraLines, err)
}

func formatBox(paint func(string) string, icon string, headline string,
	extraLines []string, err error) string {

	lines := append([]string{}, extraLines...)
	if err != nil {
		lines = append(lines, "", colour.ErrorDetail(capitalize(err.Error())))
	}
	if len(lines) > 0 && lines[0] != "" {
		lines = append([]string{""}, lines...)
	}

	var msg strings.Builder
	msg.WriteString("\n")
	msg.WriteString(paint("│ " + icon + headline + "\n"))
	for _, line := range lines {
		msg.WriteString(paint("│ ") + line + "\n")
	}
	msg.WriteString("\n")
	return msg.String()
}

func capitalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[0:1]) + text[1:]
}
