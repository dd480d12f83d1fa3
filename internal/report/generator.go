package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/IvanShishkin/dlsweep/internal/config"
	"github.com/IvanShishkin/dlsweep/pkg/models"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorOrange = "\033[38;5;208m"
	colorGray   = "\033[38;5;245m"
)

// Date layouts used by the reports
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
	StampFormat    = "2006-01-02 15:04:05"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize formats a byte count with base 1024 and two decimals
func FormatSize(size uint64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", value)
}

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		// Milliseconds
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		// Seconds
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		// Minutes and seconds
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	// Hours, minutes and seconds
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// Generator renders stats, recent and organize results to the console or
// to a report file
type Generator struct {
	config *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	return &Generator{
		config: cfg,
		logger: logger,
		out:    os.Stdout,
	}, nil
}

// SetOutput redirects console output
func (g *Generator) SetOutput(w io.Writer) {
	g.out = w
}

// GenerateStats prints the stats tables, or writes a report file when a
// format is configured. It returns the absolute path of the written file.
func (g *Generator) GenerateStats(r *models.StatsReport) (string, error) {
	if g.config.ReportFormat == "" {
		g.printStats(r)
		return "", nil
	}
	return g.write("STATS", r,
		func() string { return statsText(r) },
		func() string { return statsMarkdown(r) })
}

// GenerateRecent prints the recent-files table or writes a report file
func (g *Generator) GenerateRecent(r *models.RecentReport) (string, error) {
	if g.config.ReportFormat == "" {
		g.printRecent(r)
		return "", nil
	}
	return g.write("RECENT", r,
		func() string { return recentText(r) },
		func() string { return recentMarkdown(r) })
}

// GenerateOrganize prints the organize summary or writes a report file
func (g *Generator) GenerateOrganize(r *models.OrganizeResults) (string, error) {
	if g.config.ReportFormat == "" {
		g.printOrganize(r)
		return "", nil
	}
	return g.write("ORGANIZE", r,
		func() string { return organizeText(r) },
		func() string { return organizeMarkdown(r) })
}

// DefaultFilename returns the report file name used when no output file is set
func DefaultFilename(kind, format string, now time.Time) (string, error) {
	timestamp := now.Format("20060102-150405")
	switch format {
	case "json":
		return fmt.Sprintf("DLSWEEP-%s-%s.json", kind, timestamp), nil
	case "txt", "text":
		return fmt.Sprintf("DLSWEEP-%s-%s.txt", kind, timestamp), nil
	case "md", "markdown":
		return fmt.Sprintf("DLSWEEP-%s-%s.md", kind, timestamp), nil
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}
}

// write renders v in the configured format and writes it to the output file
func (g *Generator) write(kind string, v any, text, markdown func() string) (string, error) {
	format := g.config.ReportFormat
	outputFile := g.config.OutputFile

	// Generate default filename if not specified
	if outputFile == "" {
		var err error
		outputFile, err = DefaultFilename(kind, format, time.Now())
		if err != nil {
			return "", err
		}
	}

	g.logger.Info("Generating report",
		zap.String("kind", kind),
		zap.String("format", format),
		zap.String("output", outputFile))

	var data []byte
	switch format {
	case "json":
		var err error
		data, err = generateJSON(kind, v)
		if err != nil {
			return "", fmt.Errorf("failed to generate %s report: %w", format, err)
		}
	case "txt", "text":
		data = []byte(text())
	case "md", "markdown":
		data = []byte(markdown())
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	// Get absolute path
	absPath, _ := filepath.Abs(outputFile)
	return absPath, nil
}

// recordDate formats a record's effective time, or a placeholder when absent
func recordDate(r *models.FileRecord, layout, missing string) string {
	if r == nil {
		return missing
	}
	return r.EffectiveTime.Local().Format(layout)
}
