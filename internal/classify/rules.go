package classify

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved category names. They are always protected and never configurable.
const (
	CategoryMisc    = "Misc"
	CategoryFolders = "Folders"
)

// ErrInvalidRules is returned when a category table fails validation
var ErrInvalidRules = errors.New("invalid category rules")

// Category maps a destination folder name to the files that belong in it
type Category struct {
	Name       string   `yaml:"name" json:"name"`
	Extensions []string `yaml:"extensions" json:"extensions"` // lowercased, with leading dot
	Filenames  []string `yaml:"filenames" json:"filenames,omitempty"`
}

// Rules is a validated, ordered category table
type Rules struct {
	categories  []Category
	byExtension map[string]string
	byFilename  map[string]string
	protected   map[string]bool
}

// NewRules validates categories and builds lookup tables.
// Category order is preserved; an extension or filename may belong to
// one category only.
func NewRules(categories []Category) (*Rules, error) {
	r := &Rules{
		categories:  make([]Category, 0, len(categories)),
		byExtension: make(map[string]string),
		byFilename:  make(map[string]string),
		protected: map[string]bool{
			CategoryMisc:    true,
			CategoryFolders: true,
		},
	}

	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category with empty name", ErrInvalidRules)
		}
		if name == CategoryMisc || name == CategoryFolders {
			return nil, fmt.Errorf("%w: %q is a reserved category", ErrInvalidRules, name)
		}
		if r.protected[name] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidRules, name)
		}
		r.protected[name] = true

		normalized := Category{Name: name}
		for _, ext := range c.Extensions {
			ext = NormalizeExtension(ext)
			if ext == "" {
				continue
			}
			if owner, ok := r.byExtension[ext]; ok {
				return nil, fmt.Errorf("%w: extension %q in both %q and %q", ErrInvalidRules, ext, owner, name)
			}
			r.byExtension[ext] = name
			normalized.Extensions = append(normalized.Extensions, ext)
		}
		for _, filename := range c.Filenames {
			key := strings.ToLower(strings.TrimSpace(filename))
			if key == "" {
				continue
			}
			if owner, ok := r.byFilename[key]; ok {
				return nil, fmt.Errorf("%w: filename %q in both %q and %q", ErrInvalidRules, key, owner, name)
			}
			r.byFilename[key] = name
			normalized.Filenames = append(normalized.Filenames, key)
		}

		r.categories = append(r.categories, normalized)
	}

	return r, nil
}

// Classify returns the destination category for an entry
func (r *Rules) Classify(name string, isDir bool) string {
	if isDir {
		return CategoryFolders
	}

	if category, ok := r.byFilename[strings.ToLower(name)]; ok {
		return category
	}

	ext := Extension(name)
	if ext == "" {
		return CategoryMisc
	}
	if category, ok := r.byExtension[ext]; ok {
		return category
	}
	return CategoryMisc
}

// IsProtected reports whether name is a destination folder
func (r *Rules) IsProtected(name string) bool {
	return r.protected[name]
}

// Categories returns the configured categories in order
func (r *Rules) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Names returns every destination folder name, configured categories first
func (r *Rules) Names() []string {
	names := make([]string, 0, len(r.categories)+2)
	for _, c := range r.categories {
		names = append(names, c.Name)
	}
	return append(names, CategoryMisc, CategoryFolders)
}

// NormalizeExtension lowercases ext and adds the leading dot
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}

// Extension returns the lowercased final suffix of name, including the dot.
// Names whose only dot is the leading one (".bashrc") and names ending in a
// dot have no extension.
func Extension(name string) string {
	_, suffix := SplitName(name)
	return strings.ToLower(suffix)
}

// SplitName splits name into stem and final suffix so that stem+suffix == name
func SplitName(name string) (stem, suffix string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}
