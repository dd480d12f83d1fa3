package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules_Classify(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		isDir    bool
		expected string
	}{
		{"notes.md", false, "Documents"},
		{"REPORT.PDF", false, "Documents"},
		{"photo.JpEg", false, "Images"},
		{"song.flac", false, "Audio"},
		{"clip.mkv", false, "Video"},
		{"main.go", false, "Code"},
		{"setup.dmg", false, "Installers"},
		{"tool.exe", false, "Executables"},
		{"installerhelper", false, "Executables"},
		{"INSTALLERHELPER", false, "Executables"},
		{"InstallerHelper", false, "Executables"},
		{"backup.tar.gz", false, "Archives"},
		{"font.woff2", false, "Fonts"},
		{"unknown.xyz", false, "Misc"},
		{"README", false, "Misc"},
		{".eslintrc", false, "Misc"},
		{"trailing.", false, "Misc"},
		{"old_stuff", true, "Folders"},
		{"photos.png", true, "Folders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.Classify(tt.name, tt.isDir))
		})
	}
}

func TestRules_IsProtected(t *testing.T) {
	rules := DefaultRules()

	for _, name := range rules.Names() {
		assert.True(t, rules.IsProtected(name), "category %q should be protected", name)
	}

	assert.True(t, rules.IsProtected("Misc"))
	assert.True(t, rules.IsProtected("Folders"))
	assert.False(t, rules.IsProtected("documents"), "protection is case-sensitive")
	assert.False(t, rules.IsProtected("notes.md"))
}

func TestRules_Names(t *testing.T) {
	rules := DefaultRules()
	names := rules.Names()

	require.Len(t, names, len(DefaultCategories())+2)
	assert.Equal(t, "Documents", names[0])
	assert.Equal(t, []string{"Misc", "Folders"}, names[len(names)-2:])
}

func TestNewRules_FirstCategoryOrderIsPreserved(t *testing.T) {
	rules, err := NewRules([]Category{
		{Name: "Zeta", Extensions: []string{".z"}},
		{Name: "Alpha", Extensions: []string{".a"}},
	})
	require.NoError(t, err)

	categories := rules.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Zeta", categories[0].Name)
	assert.Equal(t, "Alpha", categories[1].Name)
}

func TestNewRules_NormalizesExtensions(t *testing.T) {
	rules, err := NewRules([]Category{
		{Name: "Docs", Extensions: []string{"PDF", ".Txt", "  ", "."}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{".pdf", ".txt"}, rules.Categories()[0].Extensions)
	assert.Equal(t, "Docs", rules.Classify("a.pdf", false))
	assert.Equal(t, "Docs", rules.Classify("b.TXT", false))
}

func TestNewRules_Validation(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
	}{
		{"Empty name", []Category{{Name: " ", Extensions: []string{".a"}}}},
		{"Reserved Misc", []Category{{Name: "Misc", Extensions: []string{".a"}}}},
		{"Reserved Folders", []Category{{Name: "Folders"}}},
		{"Duplicate category", []Category{{Name: "A"}, {Name: "A"}}},
		{"Duplicate extension", []Category{
			{Name: "A", Extensions: []string{".txt"}},
			{Name: "B", Extensions: []string{"TXT"}},
		}},
		{"Duplicate filename", []Category{
			{Name: "A", Filenames: []string{"helper"}},
			{Name: "B", Filenames: []string{"HELPER"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRules(tt.categories)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRules)
		})
	}
}

func TestNewRules_DefaultsHaveNoDuplicates(t *testing.T) {
	_, err := NewRules(DefaultCategories())
	assert.NoError(t, err)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name   string
		stem   string
		suffix string
	}{
		{"report.pdf", "report", ".pdf"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
		{"trailing.", "trailing.", ""},
		{"old_stuff", "old_stuff", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, suffix := SplitName(tt.name)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.suffix, suffix)
			assert.Equal(t, tt.name, stem+suffix)
		})
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".pdf", Extension("REPORT.PDF"))
	assert.Equal(t, ".gz", Extension("a.tar.gz"))
	assert.Equal(t, "", Extension("Makefile"))
	assert.Equal(t, "", Extension(".hidden"))
}
