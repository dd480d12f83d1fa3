package models

import "time"

// DirectoryStats aggregates a set of file records.
// Oldest and Newest are nil when FileCount is zero.
type DirectoryStats struct {
	Name      string      `json:"name"`
	FileCount int         `json:"file_count"`
	TotalSize uint64      `json:"total_size"`
	Oldest    *FileRecord `json:"oldest,omitempty"`
	Newest    *FileRecord `json:"newest,omitempty"`
}

// Empty reports whether the aggregate covers no files
func (s *DirectoryStats) Empty() bool {
	return s.FileCount == 0
}

// StatsReport is the result of the stats tool
type StatsReport struct {
	Root        string            `json:"root"`
	GeneratedAt time.Time         `json:"generated_at"`
	Duration    time.Duration     `json:"duration"`
	Total       *DirectoryStats   `json:"total"`
	Breakdown   []*DirectoryStats `json:"breakdown"` // first-level subdirectories, largest first
	Errors      int               `json:"errors"`
	Interrupted bool              `json:"interrupted"`
}

// RecentReport is the result of the recent tool
type RecentReport struct {
	Root         string        `json:"root"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Duration     time.Duration `json:"duration"`
	Limit        int           `json:"limit"`
	TotalScanned int           `json:"total_scanned"`
	Files        []*FileRecord `json:"files"`
	Errors       int           `json:"errors"`
	Interrupted  bool          `json:"interrupted"`
}

// SkipReason explains why the organizer left an entry in place
type SkipReason string

const (
	SkipProtected SkipReason = "protected" // entry is a category folder
	SkipIgnored   SkipReason = "ignored"   // entry is on the ignore list
	SkipTooNew    SkipReason = "too_new"   // entry is younger than the age threshold
	SkipVanished  SkipReason = "vanished"  // entry disappeared before it could be examined
)

// MoveResult describes what happened to one top-level entry that was due to move
type MoveResult struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	IsDir       bool   `json:"is_dir"`
	Renamed     bool   `json:"renamed"` // destination name was uniquified
	Error       string `json:"error,omitempty"`
}

// Failed reports whether the move failed
func (m *MoveResult) Failed() bool {
	return m.Error != ""
}

// OrganizeResults is the result of one organize pass
type OrganizeResults struct {
	Root         string             `json:"root"`
	StartTime    time.Time          `json:"start_time"`
	EndTime      time.Time          `json:"end_time"`
	Duration     time.Duration      `json:"duration"`
	AgeThreshold time.Duration      `json:"age_threshold"`
	DryRun       bool               `json:"dry_run"`
	Moves        []*MoveResult      `json:"moves"`
	Moved        int                `json:"moved"`
	Failed       int                `json:"failed"`
	Skipped      int                `json:"skipped"`
	SkipReasons  map[SkipReason]int `json:"skip_reasons"`
	Interrupted  bool               `json:"interrupted"`
}

// AddMove records the outcome of a move
func (r *OrganizeResults) AddMove(m *MoveResult) {
	r.Moves = append(r.Moves, m)
	if m.Failed() {
		r.Failed++
	} else {
		r.Moved++
	}
}

// AddSkip records a skipped entry
func (r *OrganizeResults) AddSkip(reason SkipReason) {
	r.Skipped++
	if r.SkipReasons == nil {
		r.SkipReasons = make(map[SkipReason]int)
	}
	r.SkipReasons[reason]++
}

// MovesByCategory groups successful moves by destination category
func (r *OrganizeResults) MovesByCategory() map[string]int {
	counts := make(map[string]int)
	for _, m := range r.Moves {
		if !m.Failed() {
			counts[m.Category]++
		}
	}
	return counts
}
