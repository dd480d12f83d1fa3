package stats

import (
	"testing"
	"time"

	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 16, 12, 0, 0, 0, time.Local)

func rec(name string, size uint64, offset time.Duration) *models.FileRecord {
	return &models.FileRecord{
		Name:          name,
		RelativePath:  name,
		Size:          size,
		EffectiveTime: t0.Add(offset),
	}
}

func TestAggregate_ReportingScenario(t *testing.T) {
	t1 := rec("small.txt", 500, -3*time.Hour)
	t2 := rec("medium.bin", 2048, -2*time.Hour)
	t3 := rec("large.iso", 1048576, -1*time.Hour)

	// Scan order should not matter for a strict ordering of timestamps.
	s := Aggregate("Downloads", []*models.FileRecord{t2, t3, t1})

	assert.Equal(t, "Downloads", s.Name)
	assert.Equal(t, 3, s.FileCount)
	assert.Equal(t, uint64(500+2048+1048576), s.TotalSize)
	assert.Same(t, t1, s.Oldest)
	assert.Same(t, t3, s.Newest)
	assert.False(t, s.Empty())
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate("empty", nil)

	assert.True(t, s.Empty())
	assert.Equal(t, uint64(0), s.TotalSize)
	assert.Nil(t, s.Oldest)
	assert.Nil(t, s.Newest)
}

func TestAggregate_SingleFile(t *testing.T) {
	only := rec("only.txt", 10, 0)
	s := Aggregate("one", []*models.FileRecord{only})

	assert.Same(t, only, s.Oldest)
	assert.Same(t, only, s.Newest)
}

func TestAggregate_TiesKeepFirst(t *testing.T) {
	first := rec("first.txt", 1, 0)
	second := rec("second.txt", 1, 0)
	third := rec("third.txt", 1, 0)

	s := Aggregate("ties", []*models.FileRecord{first, second, third})

	assert.Same(t, first, s.Oldest)
	assert.Same(t, first, s.Newest)
}

func TestAggregate_OldestNotAfterNewest(t *testing.T) {
	records := []*models.FileRecord{
		rec("a", 1, 5*time.Minute),
		rec("b", 1, -10*time.Minute),
		rec("c", 1, 20*time.Minute),
		rec("d", 1, -10*time.Minute),
		rec("e", 1, 20*time.Minute),
	}

	s := Aggregate("mixed", records)
	require.NotNil(t, s.Oldest)
	require.NotNil(t, s.Newest)

	assert.False(t, s.Oldest.EffectiveTime.After(s.Newest.EffectiveTime))
	assert.Equal(t, "b", s.Oldest.Name)
	assert.Equal(t, "c", s.Newest.Name)
}

func TestSortBySize(t *testing.T) {
	stats := []*models.DirectoryStats{
		{Name: "Audio", TotalSize: 10},
		{Name: "Documents", TotalSize: 300},
		{Name: "Fonts", TotalSize: 10},
		{Name: "Images", TotalSize: 0},
		{Name: "Video", TotalSize: 5000},
	}

	SortBySize(stats)

	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Video", "Documents", "Audio", "Fonts", "Images"}, names)
}

func TestRecent(t *testing.T) {
	old := rec("old.txt", 1, -48*time.Hour)
	mid := rec("mid.txt", 1, -1*time.Hour)
	tieA := rec("tie-a.txt", 1, 0)
	tieB := rec("tie-b.txt", 1, 0)
	records := []*models.FileRecord{old, tieA, mid, tieB}

	tests := []struct {
		name     string
		limit    int
		expected []*models.FileRecord
	}{
		{"Top two", 2, []*models.FileRecord{tieA, tieB}},
		{"All", 10, []*models.FileRecord{tieA, tieB, mid, old}},
		{"Exact", 4, []*models.FileRecord{tieA, tieB, mid, old}},
		{"Zero", 0, []*models.FileRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recent(records, tt.limit))
		})
	}

	// input order is untouched
	assert.Same(t, old, records[0])
}
