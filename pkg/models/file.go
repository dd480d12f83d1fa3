package models

import (
	"time"
)

// NoExtension is the extension recorded for files without one
const NoExtension = "none"

// RootLocation is the location recorded for files directly under the scan root
const RootLocation = "/"

// FileRecord is a snapshot of one regular file taken during a scan
type FileRecord struct {
	Name          string    `json:"name"`           // File name
	Path          string    `json:"path"`           // Absolute path
	RelativePath  string    `json:"relative_path"`  // Slash path relative to the scan root
	Location      string    `json:"location"`       // Parent directory relative to the root, "/" for the root
	Size          uint64    `json:"size"`           // File size in bytes
	ModTime       time.Time `json:"mod_time"`       // Modification time
	EffectiveTime time.Time `json:"effective_time"` // Later of modification and creation time
	Extension     string    `json:"extension"`      // Lowercased extension with dot, or "none"
	FileURI       string    `json:"file_uri"`       // file:// URI of the file
	FolderURI     string    `json:"folder_uri"`     // file:// URI of the parent directory
}

// ScanResult holds the records produced by one walk
type ScanResult struct {
	Dir         string        `json:"dir"`
	Records     []*FileRecord `json:"records"`
	Errors      int           `json:"errors"`      // entries skipped because of I/O errors
	Interrupted bool          `json:"interrupted"` // walk stopped early by cancellation
}
