package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IvanShishkin/dlsweep/pkg/models"
)

// escapeCell makes a value safe inside a Markdown table cell
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func markdownInterrupted(sb *strings.Builder, interrupted bool) {
	if interrupted {
		sb.WriteString("> ⚠️ **Interrupted**: results are partial\n\n")
	}
}

// statsMarkdown renders a stats report as Markdown
func statsMarkdown(r *models.StatsReport) string {
	var sb strings.Builder

	sb.WriteString("# Downloads Statistics\n\n")
	markdownInterrupted(&sb, r.Interrupted)

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Root | `%s` |\n", r.Root))
	sb.WriteString(fmt.Sprintf("| Generated | %s |\n", r.GeneratedAt.Format(StampFormat)))
	sb.WriteString(fmt.Sprintf("| Total Size | %s |\n", FormatSize(r.Total.TotalSize)))
	sb.WriteString(fmt.Sprintf("| Total Files | %d |\n", r.Total.FileCount))
	sb.WriteString(fmt.Sprintf("| Oldest File | %s |\n", escapeCell(describeRecord(r.Total.Oldest, DateFormat))))
	sb.WriteString(fmt.Sprintf("| Newest File | %s |\n", escapeCell(describeRecord(r.Total.Newest, DateFormat))))
	sb.WriteString("\n")

	sb.WriteString("## Directory Breakdown\n\n")
	if len(r.Breakdown) == 0 {
		sb.WriteString("_No subdirectories._\n")
		return sb.String()
	}

	sb.WriteString("| Directory | Files | Size | Oldest File (Date) | Newest File (Date) |\n")
	sb.WriteString("|-----------|:-----:|-----:|--------------------|--------------------|\n")
	for _, d := range r.Breakdown {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n",
			escapeCell(d.Name),
			d.FileCount,
			FormatSize(d.TotalSize),
			recordDate(d.Oldest, DateFormat, "-"),
			recordDate(d.Newest, DateFormat, "-")))
	}

	return sb.String()
}

// recentMarkdown renders a recent-files report as Markdown. Names and
// locations link to their file URIs.
func recentMarkdown(r *models.RecentReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Top %d Most Recent Files\n\n", len(r.Files)))
	markdownInterrupted(&sb, r.Interrupted)
	sb.WriteString(fmt.Sprintf("Root `%s`, %d files scanned.\n\n", r.Root, r.TotalScanned))

	if len(r.Files) == 0 {
		sb.WriteString("_No files found._\n")
		return sb.String()
	}

	sb.WriteString("| Date | Name | Size | Type | Location |\n")
	sb.WriteString("|:----:|------|-----:|:----:|----------|\n")
	for _, f := range r.Files {
		sb.WriteString(fmt.Sprintf("| %s | [%s](%s) | %s | %s | [%s](%s) |\n",
			recordDate(f, DateTimeFormat, "-"),
			escapeCell(f.Name), f.FileURI,
			FormatSize(f.Size),
			f.Extension,
			escapeCell(f.Location), f.FolderURI))
	}

	return sb.String()
}

// organizeMarkdown renders an organize pass as Markdown
func organizeMarkdown(r *models.OrganizeResults) string {
	var sb strings.Builder

	if r.DryRun {
		sb.WriteString("# Organize Plan (dry run)\n\n")
	} else {
		sb.WriteString("# Organize Report\n\n")
	}
	markdownInterrupted(&sb, r.Interrupted)

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Root | `%s` |\n", r.Root))
	sb.WriteString(fmt.Sprintf("| Threshold | %s |\n", r.AgeThreshold))
	sb.WriteString(fmt.Sprintf("| Start Time | %s |\n", r.StartTime.Format(StampFormat)))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(r.Duration)))
	sb.WriteString(fmt.Sprintf("| Moved | %d |\n", r.Moved))
	sb.WriteString(fmt.Sprintf("| Skipped | %d |\n", r.Skipped))
	sb.WriteString(fmt.Sprintf("| **Failed** | **%d** |\n", r.Failed))
	sb.WriteString("\n")

	byCategory := r.MovesByCategory()
	if len(byCategory) > 0 {
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		sb.WriteString("## Moves by Category\n\n")
		sb.WriteString("| Category | Entries |\n")
		sb.WriteString("|----------|---------|\n")
		for _, c := range categories {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", escapeCell(c), byCategory[c]))
		}
		sb.WriteString("\n")
	}

	if len(r.Moves) > 0 {
		sb.WriteString("## Entries\n\n")
		sb.WriteString("| Entry | Category | Destination | Status |\n")
		sb.WriteString("|-------|----------|-------------|--------|\n")
		for _, m := range r.Moves {
			status := "✅ moved"
			if r.DryRun {
				status = "planned"
			}
			if m.Failed() {
				status = "❌ " + escapeCell(m.Error)
			}
			sb.WriteString(fmt.Sprintf("| `%s` | %s | `%s` | %s |\n",
				escapeCell(m.Name), m.Category, escapeCell(m.Destination), status))
		}
	}

	return sb.String()
}
