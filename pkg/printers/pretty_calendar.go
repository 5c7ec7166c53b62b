package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/monthpick/pkg/calendar"
)

const gridWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints one generated grid: a centered month title, the weekday
// header, then every week with padding days dimmed, disabled days
// faint, and the selection (or range) highlighted.
func (pp *PrettyPrint) Month(g calendar.Grid, cfg calendar.Config, selected time.Time, rangeStart, rangeEnd *calendar.Day) {
	width := gridWidth
	if pp.ShowWeekNumbers {
		width += 3
	}

	if cfg.ShowHeader {
		tf := color.New(color.FgWhite, color.Italic)
		title := fmt.Sprintf("%s %d", g.Month, g.Year)
		mid := (width - len(title)) / 2
		if mid < 0 {
			mid = 0
		}
		tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)
	}

	if cfg.ShowWeekdayLabels {
		lf := color.New(color.Faint, color.FgWhite, color.Underline)
		if pp.ShowWeekNumbers {
			fmt.Print("   ")
		}
		labels := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			wd := (cfg.FirstDayOfWeek + time.Weekday(i)) % 7
			labels = append(labels, wd.String()[:2])
		}
		lf.Println(strings.Join(labels, " "))
	}

	for i, week := range g.Weeks {
		if pp.ShowWeekNumbers {
			color.New(color.Faint).Printf("%d: ", i+1)
		}
		for _, d := range week {
			pp.printDay(d, cfg, selected, rangeStart, rangeEnd)
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

func (pp *PrettyPrint) printDay(d calendar.Day, cfg calendar.Config, selected time.Time, rangeStart, rangeEnd *calendar.Day) {
	if d.Relationship != calendar.InMonth && !cfg.ShowAdjacentDays {
		fmt.Print("   ")
		return
	}

	c := color.New(color.Bold, color.FgHiWhite)
	switch {
	case pp.isEndpoint(d, rangeStart) || pp.isEndpoint(d, rangeEnd),
		!cfg.RangeMode && calendar.SameDate(d.Date, selected) && d.Relationship == calendar.InMonth:
		c = color.New(color.ReverseVideo, color.Bold)
	case calendar.InRange(d.Date, rangeStart, rangeEnd):
		c = color.New(color.ReverseVideo, color.Faint)
	case d.Relationship != calendar.InMonth:
		c = color.New(color.Faint, color.Italic)
	case !calendar.IsSelectable(d, cfg):
		c = color.New(color.Faint, color.CrossedOut)
	}
	_, _ = c.Printf("%2d", d.Date.Day())
	fmt.Print(" ")
}

func (pp *PrettyPrint) isEndpoint(d calendar.Day, end *calendar.Day) bool {
	return end != nil && calendar.SameDate(d.Date, end.Date)
}
