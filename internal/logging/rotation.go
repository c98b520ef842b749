package logging

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type logFile struct {
	path    string
	modTime time.Time
}

// rotate keeps the maxFiles most recent "liftray_*.log" files in dir and
// removes the rest. Removal is best effort; a file that cannot be
// removed is picked up again on the next rotation.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "liftray_") || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{
			path:    filepath.Join(dir, name),
			modTime: info.ModTime(),
		})
	}
	if len(files) <= maxFiles {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int {
		return b.modTime.Compare(a.modTime)
	})
	for _, stale := range files[maxFiles:] {
		os.Remove(stale.path)
	}
	return nil
}
