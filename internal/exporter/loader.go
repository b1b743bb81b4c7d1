package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/config"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

// loaderTemplate is the browser-side persistence artifact. It embeds the
// snapshot JSON and stores it in IndexedDB under the fixed dataset
// identifier the dashboard reads from.
const loaderTemplate = `<!-- Paste this in browser console to load processed data -->
<script>
const processedData = %s;

const DB_NAME = '%s';
const DB_VERSION = %d;
const STORE_NAME = '%s';

const request = indexedDB.open(DB_NAME, DB_VERSION);
request.onupgradeneeded = (e) => {
    const db = e.target.result;
    if (!db.objectStoreNames.contains(STORE_NAME)) {
        db.createObjectStore(STORE_NAME, { keyPath: 'id' });
    }
};
request.onsuccess = (e) => {
    const db = e.target.result;
    const tx = db.transaction([STORE_NAME], 'readwrite');
    const store = tx.objectStore(STORE_NAME);
    store.put({ id: '%s', data: processedData });
    tx.oncomplete = () => {
        console.log('Data loaded! Refresh the dashboard.');
        alert('Data loaded successfully! Refresh the dashboard.');
    };
};
</script>
`

// LoaderWriter emits the IndexedDB loader artifact.
type LoaderWriter struct {
	logger *slog.Logger
}

// NewLoaderWriter creates a new loader writer. A nil logger falls back to
// slog.Default.
func NewLoaderWriter(logger *slog.Logger) *LoaderWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoaderWriter{logger: logger}
}

// Write renders the loader HTML with the embedded snapshot to path.
func (w *LoaderWriter) Write(path string, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for loader: %w", err)
	}

	html := fmt.Sprintf(loaderTemplate,
		data,
		config.IndexedDBName,
		config.IndexedDBVersion,
		config.IndexedDBStore,
		config.DatasetID,
	)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write loader artifact: %w", err)
	}

	w.logger.Info("loader artifact written", slog.String("path", path))
	return nil
}
