// Package printers renders calendar grids and pick listings to the
// terminal with ANSI styling.
package printers

import (
	"fmt"

	"github.com/fatih/color"
)

type PrettyPrint struct {
	// ShowWeekNumbers prefixes each printed week with its index.
	ShowWeekNumbers bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}
