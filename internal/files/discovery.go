package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is one discovered input file.
type Source struct {
	Path    string
	Name    string
	Size    int64
	Archive bool
}

// Walker discovers input files and streams their tabular contents.
type Walker struct {
	logger *slog.Logger
}

// NewWalker creates a new walker. A nil logger falls back to slog.Default.
func NewWalker(logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{logger: logger}
}

// Discover returns the candidate sources in dir: every *.csv and *.zip file,
// non-recursive, case-insensitive on extension. Results are sorted by name so
// repeated runs over the same directory process sources in the same order.
func (w *Walker) Discover(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".csv" && ext != ".zip" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		sources = append(sources, Source{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    info.Size(),
			Archive: ext == ".zip",
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})

	w.logger.Debug("source discovery complete",
		slog.String("dir", dir),
		slog.Int("count", len(sources)))

	return sources, nil
}
