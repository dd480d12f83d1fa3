package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IvanShishkin/dlsweep/pkg/models"
)

func textHeader(sb *strings.Builder, title string) {
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n")
	sb.WriteString(fmt.Sprintf("  DLSWEEP %s\n", title))
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n\n")
}

func textSection(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
}

func textInterrupted(sb *strings.Builder, interrupted bool) {
	if interrupted {
		sb.WriteString("NOTE: interrupted, results are partial.\n\n")
	}
}

// statsText renders a stats report as plain text
func statsText(r *models.StatsReport) string {
	var sb strings.Builder

	textHeader(&sb, "DOWNLOADS STATISTICS")
	textInterrupted(&sb, r.Interrupted)

	// Summary
	textSection(&sb, "OVERVIEW")
	sb.WriteString(fmt.Sprintf("Root:             %s\n", r.Root))
	sb.WriteString(fmt.Sprintf("Generated:        %s\n", r.GeneratedAt.Format(StampFormat)))
	sb.WriteString(fmt.Sprintf("Duration:         %s\n", FormatDuration(r.Duration)))
	sb.WriteString(fmt.Sprintf("Total Size:       %s\n", FormatSize(r.Total.TotalSize)))
	sb.WriteString(fmt.Sprintf("Total Files:      %d\n", r.Total.FileCount))
	sb.WriteString(fmt.Sprintf("Oldest File:      %s\n", describeRecord(r.Total.Oldest, DateFormat)))
	sb.WriteString(fmt.Sprintf("Newest File:      %s\n", describeRecord(r.Total.Newest, DateFormat)))
	if r.Errors > 0 {
		sb.WriteString(fmt.Sprintf("Unreadable:       %d\n", r.Errors))
	}
	sb.WriteString("\n")

	// Breakdown
	textSection(&sb, "DIRECTORY BREAKDOWN")
	if len(r.Breakdown) == 0 {
		sb.WriteString("No subdirectories.\n")
	}
	for _, d := range r.Breakdown {
		sb.WriteString(fmt.Sprintf("%-30s %6d files %12s   %s .. %s\n",
			d.Name,
			d.FileCount,
			FormatSize(d.TotalSize),
			recordDate(d.Oldest, DateFormat, "-"),
			recordDate(d.Newest, DateFormat, "-")))
	}

	return sb.String()
}

// recentText renders a recent-files report as plain text
func recentText(r *models.RecentReport) string {
	var sb strings.Builder

	textHeader(&sb, "RECENT FILES")
	textInterrupted(&sb, r.Interrupted)

	textSection(&sb, fmt.Sprintf("TOP %d MOST RECENT FILES", len(r.Files)))
	sb.WriteString(fmt.Sprintf("Root:             %s\n", r.Root))
	sb.WriteString(fmt.Sprintf("Files Scanned:    %d\n\n", r.TotalScanned))

	for i, f := range r.Files {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", i+1, f.Name))
		sb.WriteString(fmt.Sprintf("    Date:     %s\n", recordDate(f, DateTimeFormat, "-")))
		sb.WriteString(fmt.Sprintf("    Size:     %s\n", FormatSize(f.Size)))
		sb.WriteString(fmt.Sprintf("    Type:     %s\n", f.Extension))
		sb.WriteString(fmt.Sprintf("    Location: %s\n", f.Location))
		sb.WriteString(fmt.Sprintf("    Path:     %s\n", f.Path))
	}

	return sb.String()
}

// organizeText renders an organize pass as plain text
func organizeText(r *models.OrganizeResults) string {
	var sb strings.Builder

	title := "ORGANIZE REPORT"
	if r.DryRun {
		title = "ORGANIZE PLAN (DRY RUN)"
	}
	textHeader(&sb, title)
	textInterrupted(&sb, r.Interrupted)

	textSection(&sb, "SUMMARY")
	sb.WriteString(fmt.Sprintf("Root:             %s\n", r.Root))
	sb.WriteString(fmt.Sprintf("Threshold:        %s\n", r.AgeThreshold))
	sb.WriteString(fmt.Sprintf("Start Time:       %s\n", r.StartTime.Format(StampFormat)))
	sb.WriteString(fmt.Sprintf("Duration:         %s\n", FormatDuration(r.Duration)))
	sb.WriteString(fmt.Sprintf("Moved:            %d\n", r.Moved))
	sb.WriteString(fmt.Sprintf("Skipped:          %d\n", r.Skipped))
	sb.WriteString(fmt.Sprintf("Failed:           %d\n", r.Failed))
	sb.WriteString("\n")

	if len(r.SkipReasons) > 0 {
		textSection(&sb, "SKIPPED BY REASON")
		for _, reason := range sortedReasons(r.SkipReasons) {
			sb.WriteString(fmt.Sprintf("  %-12s: %d\n", reason, r.SkipReasons[reason]))
		}
		sb.WriteString("\n")
	}

	if len(r.Moves) > 0 {
		verb := "MOVED"
		if r.DryRun {
			verb = "PLANNED"
		}

		textSection(&sb, "ENTRIES")
		for _, m := range r.Moves {
			if m.Failed() {
				sb.WriteString(fmt.Sprintf("%-8s %s: %s\n", "FAILED", m.Name, m.Error))
				continue
			}
			sb.WriteString(fmt.Sprintf("%-8s %s -> %s\n", verb, m.Name, m.Destination))
		}
	}

	return sb.String()
}

// describeRecord formats "name (date)" or N/A
func describeRecord(r *models.FileRecord, layout string) string {
	if r == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s (%s)", r.Name, recordDate(r, layout, "-"))
}

// sortedReasons returns skip reasons in a stable order
func sortedReasons(reasons map[models.SkipReason]int) []models.SkipReason {
	keys := make([]models.SkipReason, 0, len(reasons))
	for k := range reasons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
