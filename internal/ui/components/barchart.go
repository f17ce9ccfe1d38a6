package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/ui/theme"
)

// BarChart renders recent daily practice minutes as vertical bars,
// one column per calendar day, oldest on the left.
type BarChart struct {
	Days   int
	Height int
}

// NewBarChart creates a chart covering the last days calendar days.
func NewBarChart(days, height int) BarChart {
	if days < 1 {
		days = 1
	}
	if height < 2 {
		height = 2
	}
	return BarChart{Days: days, Height: height}
}

const barColWidth = 4

// View renders the chart for sk ending at now's date.
func (b BarChart) View(sk *skill.Skill, now time.Time) string {
	dates := make([]string, b.Days)
	minutes := make([]int, b.Days)
	maxMinutes := 0
	for i := 0; i < b.Days; i++ {
		day := now.AddDate(0, 0, i-b.Days+1)
		dates[i] = day.Format(skill.DateLayout)
		minutes[i] = sk.MinutesOn(dates[i])
		if minutes[i] > maxMinutes {
			maxMinutes = minutes[i]
		}
	}

	if maxMinutes == 0 {
		return theme.Hint.Render("No practice recorded in the last " +
			fmt.Sprintf("%d", b.Days) + " days")
	}

	// Bar heights in eighths of a row so short days still register.
	heights := make([]int, b.Days)
	for i, m := range minutes {
		if m == 0 {
			continue
		}
		h := m * b.Height * 8 / maxMinutes
		if h < 1 {
			h = 1
		}
		heights[i] = h
	}

	var rows []string
	for row := b.Height; row >= 1; row-- {
		var sb strings.Builder
		for i := range heights {
			cell := barCell(heights[i], row)
			if cell == " " {
				sb.WriteString(theme.BarEmpty.Render(pad(cell)))
			} else {
				sb.WriteString(theme.BarFilled.Render(pad(cell)))
			}
		}
		rows = append(rows, sb.String())
	}

	// Axis labels: day-of-month under each column.
	var labels strings.Builder
	for _, d := range dates {
		labels.WriteString(pad(d[len(d)-2:]))
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels.String()))

	return strings.Join(rows, "\n")
}

var blockEighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// barCell picks the glyph for one chart cell. height is in eighths,
// row counts up from the bottom.
func barCell(height, row int) string {
	full := height / 8
	if row <= full {
		return "█"
	}
	if row == full+1 {
		return string(blockEighths[height%8])
	}
	return " "
}

func pad(s string) string {
	for len([]rune(s)) < barColWidth-1 {
		s += " "
	}
	return " " + s
}
