package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bodaroute/bodaroute/internal/models"
)

// EdgeHistoryRepository persists edge history as a single JSON document
// on the local filesystem. Every Save rewrites the file atomically via
// a temp file and rename, so a concurrent reader can never observe a
// partially written document.
type EdgeHistoryRepository struct {
	path string
}

func NewEdgeHistoryRepository(path string) *EdgeHistoryRepository {
	return &EdgeHistoryRepository{path: path}
}

func (r *EdgeHistoryRepository) Load(ctx context.Context) (map[models.EdgeKey]*models.EdgeHistoryRecord, error) {
	records := make(map[models.EdgeKey]*models.EdgeHistoryRecord)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return nil, fmt.Errorf("reading edge history %s: %w", r.path, err)
	}

	var stored []*models.EdgeHistoryRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decoding edge history %s: %w", r.path, err)
	}
	for _, rec := range stored {
		records[rec.Key()] = rec
	}
	return records, nil
}

func (r *EdgeHistoryRepository) Save(ctx context.Context, records map[models.EdgeKey]*models.EdgeHistoryRecord) error {
	stored := make([]*models.EdgeHistoryRecord, 0, len(records))
	for _, rec := range records {
		stored = append(stored, rec)
	}
	// Deterministic file contents keep diffs and fixtures stable.
	sort.Slice(stored, func(i, j int) bool {
		if stored[i].From != stored[j].From {
			return stored[i].From < stored[j].From
		}
		return stored[i].To < stored[j].To
	})

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding edge history: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".edge_history-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp history file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp history file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing edge history %s: %w", r.path, err)
	}
	return nil
}
