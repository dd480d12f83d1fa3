package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/IvanShishkin/dlsweep/internal/filesystem"
	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// Collector builds stats and recent-file reports from one walk of a root
type Collector struct {
	fs     billy.Filesystem
	walker *filesystem.Walker
	logger *zap.Logger
}

// NewCollector creates a new collector over fsys
func NewCollector(fsys billy.Filesystem, logger *zap.Logger) *Collector {
	return &Collector{
		fs:     fsys,
		walker: filesystem.NewWalker(fsys, logger),
		logger: logger,
	}
}

// Collect computes the overall aggregate and one aggregate per visible
// first-level subdirectory. Subdirectories without files are included.
func (c *Collector) Collect(ctx context.Context) (*models.StatsReport, error) {
	start := time.Now()

	c.logger.Info("Collecting statistics", zap.String("root", c.fs.Root()))

	scan, err := c.walker.Scan(ctx, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", c.fs.Root(), err)
	}

	breakdown, err := c.subdirectories()
	if err != nil {
		return nil, err
	}

	bySubdir := make(map[string]*models.DirectoryStats, len(breakdown))
	for _, s := range breakdown {
		bySubdir[s.Name] = s
	}

	total := &models.DirectoryStats{Name: c.fs.Root()}
	for _, r := range scan.Records {
		add(total, r)

		first, _, nested := strings.Cut(r.RelativePath, "/")
		if !nested {
			continue
		}
		if s, ok := bySubdir[first]; ok {
			add(s, r)
		}
	}

	SortBySize(breakdown)

	report := &models.StatsReport{
		Root:        c.fs.Root(),
		GeneratedAt: time.Now(),
		Total:       total,
		Breakdown:   breakdown,
		Errors:      scan.Errors,
		Interrupted: scan.Interrupted,
	}
	report.Duration = report.GeneratedAt.Sub(start)

	c.logger.Info("Statistics collected",
		zap.Int("files", total.FileCount),
		zap.Uint64("bytes", total.TotalSize),
		zap.Int("subdirectories", len(breakdown)))

	return report, nil
}

// Recent returns the limit most recent files under the root
func (c *Collector) Recent(ctx context.Context, limit int) (*models.RecentReport, error) {
	start := time.Now()

	scan, err := c.walker.Scan(ctx, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", c.fs.Root(), err)
	}

	report := &models.RecentReport{
		Root:         c.fs.Root(),
		GeneratedAt:  time.Now(),
		Limit:        limit,
		TotalScanned: len(scan.Records),
		Files:        Recent(scan.Records, limit),
		Errors:       scan.Errors,
		Interrupted:  scan.Interrupted,
	}
	report.Duration = report.GeneratedAt.Sub(start)

	return report, nil
}

// subdirectories returns empty stats for each visible first-level
// directory, in name order
func (c *Collector) subdirectories() ([]*models.DirectoryStats, error) {
	entries, err := c.fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.fs.Root(), err)
	}

	stats := make([]*models.DirectoryStats, 0)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		stats = append(stats, &models.DirectoryStats{Name: entry.Name()})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Name < stats[j].Name
	})
	return stats, nil
}
