package tui

import (
	"fmt"
	"strings"

	"github.com/Gauthampro7/vedic-astrology-app/internal/library"
)

// LibraryView lists the saved charts from the library index.
type LibraryView struct {
	Entries []library.Entry
	Cursor  int
}

// MoveUp moves the selection up one row.
func (v *LibraryView) MoveUp() {
	if v.Cursor > 0 {
		v.Cursor--
	}
}

// MoveDown moves the selection down one row.
func (v *LibraryView) MoveDown() {
	if v.Cursor < len(v.Entries)-1 {
		v.Cursor++
	}
}

// Selected returns the entry under the cursor.
func (v *LibraryView) Selected() (library.Entry, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Entries) {
		return library.Entry{}, false
	}
	return v.Entries[v.Cursor], true
}

// View renders the chart list.
func (v LibraryView) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(" Saved Charts "))
	b.WriteString("\n\n")

	if len(v.Entries) == 0 {
		b.WriteString(styleMuted.Render("No saved charts yet. Press n to calculate one."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styleHeader.Render(fmt.Sprintf("%-30s %-12s %-10s", "Place", "Date", "Time")))
	b.WriteString("\n")
	for i, e := range v.Entries {
		line := fmt.Sprintf("%-30s %-12s %-10s", e.Place, e.Date, e.Time)
		if i == v.Cursor {
			b.WriteString(styleSelected.Render(selectionIndicator + line))
		} else {
			b.WriteString(" " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("enter: open · n: new chart · q: quit"))
	return b.String()
}
