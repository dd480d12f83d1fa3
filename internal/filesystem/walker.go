package filesystem

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/IvanShishkin/dlsweep/internal/classify"
	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// Walker walks a directory tree and yields records for regular files
type Walker struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// NewWalker creates a new walker over fsys
func NewWalker(fsys billy.Filesystem, logger *zap.Logger) *Walker {
	return &Walker{
		fs:     fsys,
		logger: logger,
	}
}

// Walk recursively walks dir, relative to the filesystem root, and calls
// callback for every regular file that is not hidden. Hidden directories
// are pruned. Entries that cannot be read are logged and skipped; the
// returned count says how many. Links are never followed.
func (w *Walker) Walk(ctx context.Context, dir string, callback func(*models.FileRecord)) (int, error) {
	dir = cleanRel(dir)
	skipped := 0

	err := util.Walk(w.fs, dir, func(p string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		isRoot := p == dir
		if err != nil {
			if isRoot {
				return err
			}
			w.logger.Warn("Error accessing path", zap.String("path", p), zap.Error(err))
			skipped++
			// Directory listing failed; nothing below it can be walked.
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !isRoot && isHidden(info.Name()) {
			if info.IsDir() {
				w.logger.Debug("Skipping hidden directory", zap.String("path", p))
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		callback(w.record(p, info))
		return nil
	})

	return skipped, err
}

// Scan walks dir and collects every record. Cancellation is not an error:
// the records gathered so far are returned with Interrupted set.
func (w *Walker) Scan(ctx context.Context, dir string) (*models.ScanResult, error) {
	result := &models.ScanResult{
		Dir:     cleanRel(dir),
		Records: make([]*models.FileRecord, 0),
	}

	skipped, err := w.Walk(ctx, dir, func(r *models.FileRecord) {
		result.Records = append(result.Records, r)
	})
	result.Errors = skipped

	if err != nil {
		if ctx.Err() != nil {
			w.logger.Info("Scan interrupted",
				zap.String("dir", result.Dir),
				zap.Int("records", len(result.Records)))
			result.Interrupted = true
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// record builds a FileRecord from a walked path relative to the root
func (w *Walker) record(p string, info os.FileInfo) *models.FileRecord {
	rel := filepath.ToSlash(p)
	abs := filepath.Join(w.fs.Root(), p)
	parent := filepath.Dir(abs)

	location := path.Dir(rel)
	if location == "." {
		location = models.RootLocation
	}

	ext := classify.Extension(info.Name())
	if ext == "" {
		ext = models.NoExtension
	}

	mod := info.ModTime()

	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}

	return &models.FileRecord{
		Name:          info.Name(),
		Path:          abs,
		RelativePath:  rel,
		Location:      location,
		Size:          size,
		ModTime:       mod,
		EffectiveTime: effectiveTime(mod, info),
		Extension:     ext,
		FileURI:       FileURI(abs),
		FolderURI:     FileURI(parent),
	}
}

// FileURI returns the file:// URI for an absolute path
func FileURI(abs string) string {
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// isHidden checks if a file is hidden
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

func cleanRel(dir string) string {
	if dir == "" {
		return "."
	}
	return filepath.Clean(dir)
}
