package searcher

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type cacheSnapshot struct {
	Entries []Entry
}

// SaveCache writes the cache entries to path as a gob snapshot, creating
// parent directories as needed. A snapshot is only meaningful for the tree
// it was computed against.
func (s *Searcher) SaveCache(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	defer file.Close()

	snapshot := cacheSnapshot{Entries: s.cache.Snapshot()}
	if err := gob.NewEncoder(file).Encode(&snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", path, err)
	}

	log.Info().Msgf("stored cache snapshot to %s (%d entries)", path, len(snapshot.Entries))
	return nil
}

// LoadCache restores entries from a gob snapshot into the searcher's own
// cache. Entries already present are kept as-is.
func (s *Searcher) LoadCache(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer file.Close()

	var snapshot cacheSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	s.cache.Restore(snapshot.Entries)
	log.Info().Msgf("restored cache snapshot from %s (%d entries)", path, len(snapshot.Entries))
	return nil
}
