package quiz

import (
	"fmt"
	"time"
)

// Store is the processed-article dedup store: one JSON object on disk
// mapping article URL to its ProcessedRecord. The whole mapping is
// loaded on every check and rewritten on every update. A missing or
// corrupt file reads as an empty store (fail open) so a damaged store
// never blocks a run.
//
// There is no locking. The intended usage is one scheduled run per
// day; two racing runs can both pass Contains and both notify, which
// is accepted.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() map[string]ProcessedRecord {
	records := map[string]ProcessedRecord{}
	if err := readJSONFile(s.path, &records); err != nil {
		return map[string]ProcessedRecord{}
	}
	return records
}

// Contains reports whether the article URL has already been announced.
func (s *Store) Contains(url string) bool {
	_, ok := s.load()[url]
	return ok
}

// MarkProcessed records an announced article and rewrites the store.
func (s *Store) MarkProcessed(url, dateLabel string) error {
	records := s.load()
	records[url] = ProcessedRecord{
		Date:      dateLabel,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := writeJSONFile(s.path, records); err != nil {
		return fmt.Errorf("write store %s: %w", s.path, err)
	}
	return nil
}
