package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/IvanShishkin/dlsweep/internal/classify"
	"github.com/IvanShishkin/dlsweep/internal/config"
	"github.com/IvanShishkin/dlsweep/internal/filesystem"
	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// EventCallback is called for every entry that is moved, planned or failed
type EventCallback func(result *models.MoveResult)

// Organizer moves stale top-level entries of a root into category folders
type Organizer struct {
	config  *config.Config
	rules   *classify.Rules
	fs      billy.Filesystem
	logger  *zap.Logger
	now     func() time.Time
	onEvent EventCallback
}

// NewOrganizer creates a new organizer for the filesystem rooted at the
// configured root
func NewOrganizer(cfg *config.Config, rules *classify.Rules, fsys billy.Filesystem, logger *zap.Logger) *Organizer {
	return &Organizer{
		config: cfg,
		rules:  rules,
		fs:     fsys,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the clock used for the age gate and unique names
func (o *Organizer) SetClock(now func() time.Time) {
	o.now = now
}

// SetEventCallback sets the event callback function
func (o *Organizer) SetEventCallback(cb EventCallback) {
	o.onEvent = cb
}

// Plan decides what a pass would do without changing the filesystem
func (o *Organizer) Plan(ctx context.Context) (*models.OrganizeResults, error) {
	return o.run(ctx, false)
}

// Organize performs one pass over the root. Per-entry failures are
// recorded in the results; the error is reserved for a root that cannot
// be listed. Moves completed before a cancellation stand.
func (o *Organizer) Organize(ctx context.Context) (*models.OrganizeResults, error) {
	return o.run(ctx, true)
}

func (o *Organizer) run(ctx context.Context, execute bool) (*models.OrganizeResults, error) {
	start := time.Now()
	now := o.now()
	results := &models.OrganizeResults{
		Root:         o.fs.Root(),
		StartTime:    start,
		AgeThreshold: o.config.AgeThreshold(),
		DryRun:       !execute,
		Moves:        make([]*models.MoveResult, 0),
		SkipReasons:  make(map[models.SkipReason]int),
	}

	o.logger.Info("Starting organize",
		zap.String("root", results.Root),
		zap.Duration("threshold", results.AgeThreshold),
		zap.Bool("dry_run", results.DryRun))

	entries, err := o.fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", results.Root, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	// Destinations claimed earlier in this pass count as taken, so a dry
	// run resolves the same names a real pass would.
	claimed := make(map[string]bool)
	exists := func(path string) bool {
		if claimed[path] {
			return true
		}
		_, err := o.fs.Lstat(path)
		return !errors.Is(err, os.ErrNotExist)
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			o.logger.Info("Organize interrupted", zap.Int("moved", results.Moved))
			results.Interrupted = true
			break
		}

		move, reason := o.decide(entry.Name(), now, exists)
		if reason != "" {
			o.logger.Debug("Skipping entry",
				zap.String("name", entry.Name()),
				zap.String("reason", string(reason)))
			results.AddSkip(reason)
			continue
		}

		if !move.Failed() && execute {
			o.execute(move)
		}
		if !move.Failed() {
			claimed[move.Destination] = true
		}

		results.AddMove(move)
		if o.onEvent != nil {
			o.onEvent(move)
		}
	}

	results.EndTime = time.Now()
	results.Duration = results.EndTime.Sub(start)

	o.logger.Info("Organize completed",
		zap.Int("moved", results.Moved),
		zap.Int("skipped", results.Skipped),
		zap.Int("failed", results.Failed))

	return results, nil
}

// decide runs the per-entry checks. It returns either a skip reason or a
// move result; a move result may already carry an error.
func (o *Organizer) decide(name string, now time.Time, exists ExistsFunc) (*models.MoveResult, models.SkipReason) {
	if o.rules.IsProtected(name) {
		return nil, models.SkipProtected
	}
	if o.config.IsIgnored(name) {
		return nil, models.SkipIgnored
	}

	move := &models.MoveResult{
		Name:   name,
		Source: name,
	}

	info, err := o.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.SkipVanished
		}
		o.logger.Warn("Failed to stat entry", zap.String("name", name), zap.Error(err))
		move.Error = err.Error()
		return move, ""
	}

	if now.Sub(info.ModTime()) < o.config.AgeThreshold() {
		return nil, models.SkipTooNew
	}

	move.IsDir = info.IsDir()
	move.Category = o.rules.Classify(name, move.IsDir)

	dest, renamed, err := ResolveDestination(move.Category, name, now, exists)
	if err != nil {
		move.Error = fmt.Sprintf("%s/%s: %v", move.Category, UniqueName(name, now), err)
		return move, ""
	}
	move.Destination = dest
	move.Renamed = renamed

	return move, ""
}

// execute creates the category folder and moves the entry
func (o *Organizer) execute(move *models.MoveResult) {
	if err := o.fs.MkdirAll(move.Category, 0755); err != nil {
		o.logger.Warn("Failed to create category folder",
			zap.String("category", move.Category),
			zap.Error(err))
		move.Error = err.Error()
		return
	}

	if err := filesystem.Move(o.fs, move.Source, move.Destination); err != nil {
		o.logger.Warn("Failed to move entry",
			zap.String("name", move.Name),
			zap.String("destination", move.Destination),
			zap.Error(err))
		move.Error = err.Error()
		return
	}

	o.logger.Debug("Moved entry",
		zap.String("name", move.Name),
		zap.String("destination", move.Destination))
}
