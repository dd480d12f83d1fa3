package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle    = lipgloss.NewStyle().Faint(true)

	cyan    = lipgloss.Color("6")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	magenta = lipgloss.Color("5")
	white   = lipgloss.Color("7")
)

// column describes the style of one console table column
type column struct {
	header string
	color  lipgloss.TerminalColor
	align  lipgloss.Position
	bold   bool
	faint  bool
}

// newTable builds a rounded table with per-column styles
func newTable(columns []column) *table.Table {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			c := columns[col]
			style := cellStyle.Foreground(c.color).Align(c.align)
			if c.bold {
				style = style.Bold(true)
			}
			if c.faint {
				style = style.Faint(true)
			}
			return style
		})
}

// hyperlink wraps text in a terminal hyperlink to uri
func hyperlink(uri, text string) string {
	if uri == "" {
		return text
	}
	return ansi.SetHyperlink(uri) + text + ansi.ResetHyperlink()
}

func (g *Generator) printInterrupted(interrupted bool) {
	if interrupted {
		fmt.Fprintf(g.out, "  %s⚠ Interrupted, showing partial results%s\n\n", colorYellow, colorReset)
	}
}

// printStats prints the overview and breakdown tables
func (g *Generator) printStats(r *models.StatsReport) {
	fmt.Fprintln(g.out)
	g.printInterrupted(r.Interrupted)

	overview := newTable([]column{
		{header: "Metric", color: cyan, align: lipgloss.Left},
		{header: "Value", color: white, align: lipgloss.Left},
	})
	overview.Row("Total Size", FormatSize(r.Total.TotalSize))
	overview.Row("Total Files", strconv.Itoa(r.Total.FileCount))
	overview.Row("Oldest File", consoleRecord(r.Total.Oldest))
	overview.Row("Newest File", consoleRecord(r.Total.Newest))

	fmt.Fprintln(g.out, titleStyle.Render("Downloads Overview"))
	fmt.Fprintln(g.out, overview.Render())
	fmt.Fprintln(g.out)

	breakdown := newTable([]column{
		{header: "Directory", color: yellow, align: lipgloss.Left, bold: true},
		{header: "Files", color: white, align: lipgloss.Center},
		{header: "Size", color: cyan, align: lipgloss.Right},
		{header: "Oldest File (Date)", color: white, align: lipgloss.Left, faint: true},
		{header: "Newest File (Date)", color: green, align: lipgloss.Left},
	})
	for _, d := range r.Breakdown {
		breakdown.Row(
			d.Name,
			strconv.Itoa(d.FileCount),
			FormatSize(d.TotalSize),
			recordDate(d.Oldest, DateFormat, "-"),
			recordDate(d.Newest, DateFormat, "-"),
		)
	}

	fmt.Fprintln(g.out, titleStyle.Render("Directory Breakdown"))
	fmt.Fprintln(g.out, breakdown.Render())

	if r.Errors > 0 {
		fmt.Fprintln(g.out, dimStyle.Render(fmt.Sprintf("%d entries could not be read", r.Errors)))
	}
	fmt.Fprintln(g.out)
}

// consoleRecord formats "name (date)" with a colored date, or N/A
func consoleRecord(r *models.FileRecord) string {
	if r == nil {
		return "N/A"
	}
	date := lipgloss.NewStyle().Foreground(green).Render(recordDate(r, DateFormat, "-"))
	return fmt.Sprintf("%s (%s)", r.Name, date)
}

// printRecent prints the most recent files with clickable names and locations
func (g *Generator) printRecent(r *models.RecentReport) {
	fmt.Fprintln(g.out)
	g.printInterrupted(r.Interrupted)

	t := newTable([]column{
		{header: "Date", color: green, align: lipgloss.Center},
		{header: "Name", color: white, align: lipgloss.Left, bold: true},
		{header: "Size", color: cyan, align: lipgloss.Right},
		{header: "Type", color: magenta, align: lipgloss.Center},
		{header: "Location", color: yellow, align: lipgloss.Left, bold: true},
	})
	for _, f := range r.Files {
		t.Row(
			recordDate(f, DateTimeFormat, "-"),
			hyperlink(f.FileURI, f.Name),
			FormatSize(f.Size),
			f.Extension,
			hyperlink(f.FolderURI, f.Location),
		)
	}

	title := fmt.Sprintf("Top %d Most Recent Files in %s", len(r.Files), filepath.Base(r.Root))
	fmt.Fprintln(g.out, titleStyle.Render(title))
	fmt.Fprintln(g.out, t.Render())
	fmt.Fprintln(g.out, dimStyle.Render("Tip: Cmd+Click filenames to open them. Cmd+Click Location to open folder."))
	fmt.Fprintln(g.out)
}

// printOrganize prints the organize summary
func (g *Generator) printOrganize(r *models.OrganizeResults) {
	fmt.Fprintln(g.out)

	title := "ORGANIZE COMPLETE"
	if r.DryRun {
		title = "DRY RUN COMPLETE"
	}
	fmt.Fprintf(g.out, "%s%s%s%s\n", colorBold, colorOrange, title, colorReset)
	fmt.Fprintln(g.out)
	g.printInterrupted(r.Interrupted)

	fmt.Fprintf(g.out, "  %sRoot:%s      %s\n", colorGray, colorReset, r.Root)
	fmt.Fprintf(g.out, "  %sThreshold:%s %s\n", colorGray, colorReset, r.AgeThreshold)
	fmt.Fprintf(g.out, "  %sDuration:%s  %s\n", colorGray, colorReset, FormatDuration(r.Duration))
	fmt.Fprintln(g.out)

	byCategory := r.MovesByCategory()
	if len(byCategory) > 0 {
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		t := newTable([]column{
			{header: "Category", color: yellow, align: lipgloss.Left, bold: true},
			{header: "Entries", color: cyan, align: lipgloss.Right},
		})
		for _, c := range categories {
			t.Row(c, strconv.Itoa(byCategory[c]))
		}
		fmt.Fprintln(g.out, t.Render())
		fmt.Fprintln(g.out)
	}

	moved := "Moved"
	if r.DryRun {
		moved = "Planned"
	}
	fmt.Fprintf(g.out, "  %s%s✓ %s: %d%s  %sSkipped: %d%s\n",
		colorBold, colorGreen, moved, r.Moved, colorReset, colorGray, r.Skipped, colorReset)
	if r.Failed > 0 {
		fmt.Fprintf(g.out, "  %s%s✗ Failed: %d%s\n", colorBold, colorRed, r.Failed, colorReset)
	}
	fmt.Fprintln(g.out)
}
