package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubepilot/cubepilot"
)

// faceStyles colors a facelet cell per cube color letter.
var faceStyles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240")),
	'R': lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	'F': lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("255")),
	'D': lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("240")),
	'L': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	'B': lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
}

var unknownStyle = lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("240"))

func cell(letter byte) string {
	style, ok := faceStyles[letter]
	if !ok {
		style = unknownStyle
	}
	return style.Render("  ")
}

// RenderStatus draws the 54-letter cube string as the usual unfolded
// cross, U on top, then L F R B, then D.
func RenderStatus(status string) string {
	if len(status) != 54 {
		return ""
	}
	face := func(i int) [3]string {
		var rows [3]string
		for r := 0; r < 3; r++ {
			var b strings.Builder
			for c := 0; c < 3; c++ {
				b.WriteString(cell(status[9*i+3*r+c]))
			}
			rows[r] = b.String()
		}
		return rows
	}

	// URFDLB face offsets into the status string
	u, r, f, d, l, b := face(0), face(1), face(2), face(3), face(4), face(5)
	pad := strings.Repeat(" ", 6)

	var out strings.Builder
	for i := 0; i < 3; i++ {
		out.WriteString(pad + u[i] + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(l[i] + f[i] + r[i] + b[i] + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(pad + d[i] + "\n")
	}
	return out.String()
}

// RenderSamples draws URFDLB-ordered raw samples using true colors, for
// live scan progress before classification has run.
func RenderSamples(samples []cubepilot.BGR) string {
	if len(samples) != 54 {
		return ""
	}
	colored := make([]string, 54)
	for i, s := range samples {
		style := lipgloss.NewStyle().Background(lipgloss.Color(hexBGR(s)))
		colored[i] = style.Render("  ")
	}
	face := func(i int) [3]string {
		var rows [3]string
		for r := 0; r < 3; r++ {
			rows[r] = colored[9*i+3*r] + colored[9*i+3*r+1] + colored[9*i+3*r+2]
		}
		return rows
	}

	u, r, f, d, l, b := face(0), face(1), face(2), face(3), face(4), face(5)
	pad := strings.Repeat(" ", 6)

	var out strings.Builder
	for i := 0; i < 3; i++ {
		out.WriteString(pad + u[i] + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(l[i] + f[i] + r[i] + b[i] + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(pad + d[i] + "\n")
	}
	return out.String()
}

const hexDigits = "0123456789abcdef"

func hexBGR(c cubepilot.BGR) string {
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = hexDigits[v>>4]
		b[2+2*i] = hexDigits[v&0xf]
	}
	return string(b)
}
