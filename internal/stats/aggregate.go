package stats

import (
	"sort"

	"github.com/IvanShishkin/dlsweep/pkg/models"
)

// Aggregate sums records and finds the oldest and newest by effective time.
// Ties keep the record seen first.
func Aggregate(name string, records []*models.FileRecord) *models.DirectoryStats {
	s := &models.DirectoryStats{Name: name}
	for _, r := range records {
		add(s, r)
	}
	return s
}

// add folds one record into s
func add(s *models.DirectoryStats, r *models.FileRecord) {
	s.FileCount++
	s.TotalSize += r.Size

	if s.Oldest == nil || r.EffectiveTime.Before(s.Oldest.EffectiveTime) {
		s.Oldest = r
	}
	if s.Newest == nil || r.EffectiveTime.After(s.Newest.EffectiveTime) {
		s.Newest = r
	}
}

// SortBySize orders stats by total size, largest first. Equal sizes keep
// their relative order.
func SortBySize(stats []*models.DirectoryStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSize > stats[j].TotalSize
	})
}

// Recent returns up to limit records, most recent effective time first.
// Records with equal times keep their scan order.
func Recent(records []*models.FileRecord, limit int) []*models.FileRecord {
	if limit <= 0 {
		return []*models.FileRecord{}
	}

	sorted := make([]*models.FileRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveTime.After(sorted[j].EffectiveTime)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
