package util

import (
	"strings"

	"github.com/fatih/color"
)

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"underline": color.Underline,
	"bold":      color.Bold,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
}

// SetColor turns colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func ColorOutput(text string, colorOptions ...string) string {
	attributes := []color.Attribute{}
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}

// Highlight applies colorOptions to every case-insensitive occurrence of
// token in text.
func Highlight(text, token string, colorOptions ...string) string {
	if token == "" {
		return text
	}

	lowerText := strings.ToLower(text)
	lowerToken := strings.ToLower(token)
	if len(lowerText) != len(text) {
		return text
	}

	var b strings.Builder
	for {
		i := strings.Index(lowerText, lowerToken)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}

		end := i + len(lowerToken)
		b.WriteString(text[:i])
		b.WriteString(ColorOutput(text[i:end], colorOptions...))

		text = text[end:]
		lowerText = lowerText[end:]
	}
}
