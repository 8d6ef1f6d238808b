package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Dataset file names under the data directory.
const (
	datasetClubInfo = "clubInfo"
	datasetFixtures = "fixtures"
	datasetResults  = "results"
	datasetFaq      = "faq"
)

// DataStore lazily loads and caches the four JSON datasets. All datasets are
// read-only for the process lifetime; the only mutation is a cache clear,
// which forces a reload on the next access. A nil cached value means
// "not loaded yet" — an empty JSON array or object still counts as loaded.
type DataStore struct {
	mu            sync.RWMutex
	dir           string
	upcomingLimit int
	log           *zap.SugaredLogger
	watcher       *fsnotify.Watcher

	clubInfo record
	fixtures []record
	results  []record
	faq      []any
}

// NewDataStore creates a store over the given data directory and a file
// watcher for it. Call WatchFiles in a goroutine to enable auto-reload.
func NewDataStore(dir string, upcomingLimit int, log *zap.SugaredLogger) (*DataStore, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch data directory: %w", err)
	}

	return &DataStore{
		dir:           dir,
		upcomingLimit: upcomingLimit,
		log:           log,
		watcher:       watcher,
	}, nil
}

func (ds *DataStore) Close() {
	if ds.watcher != nil {
		ds.watcher.Close()
	}
}

// WatchFiles consumes file events for the data directory and clears the
// cache entry of any dataset whose JSON file is written or created, so the
// next access re-reads it. Runs until the watcher is closed.
func (ds *DataStore) WatchFiles() {
	ds.log.Infow("file watcher started", "dir", ds.dir)

	for {
		select {
		case event, ok := <-ds.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}

			dataset := strings.TrimSuffix(filepath.Base(event.Name), ".json")

			// Small delay so a partial write settles before reload.
			time.Sleep(100 * time.Millisecond)

			if ds.ClearDataset(dataset) {
				ds.log.Infow("dataset file changed, cache cleared", "dataset", dataset, "file", event.Name)
			}

		case err, ok := <-ds.watcher.Errors:
			if !ok {
				return
			}
			ds.log.Warnw("file watcher error", "error", err)
		}
	}
}

func (ds *DataStore) loadJSON(dataset string, v any) error {
	path := filepath.Join(ds.dir, dataset+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s dataset: %w", dataset, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s dataset: %w", dataset, err)
	}

	ds.log.Infow("dataset loaded", "dataset", dataset, "file", path)
	return nil
}

// ClubInfo returns the cached club info record, loading it on first access.
func (ds *DataStore) ClubInfo() (record, error) {
	ds.mu.RLock()
	cached := ds.clubInfo
	ds.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.clubInfo != nil {
		return ds.clubInfo, nil
	}

	var info record
	if err := ds.loadJSON(datasetClubInfo, &info); err != nil {
		return nil, err
	}
	if info == nil {
		info = record{}
	}
	ds.clubInfo = info
	return info, nil
}

// Fixtures returns the cached fixture list, loading it on first access.
// The list is trusted to be pre-sorted by date; index 0 is the next fixture.
func (ds *DataStore) Fixtures() ([]record, error) {
	ds.mu.RLock()
	cached := ds.fixtures
	ds.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.fixtures != nil {
		return ds.fixtures, nil
	}

	var fixtures []record
	if err := ds.loadJSON(datasetFixtures, &fixtures); err != nil {
		return nil, err
	}
	if fixtures == nil {
		fixtures = []record{}
	}
	ds.fixtures = fixtures
	return fixtures, nil
}

// Results returns the cached result list, loading it on first access.
// Index 0 is the latest result.
func (ds *DataStore) Results() ([]record, error) {
	ds.mu.RLock()
	cached := ds.results
	ds.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.results != nil {
		return ds.results, nil
	}

	var results []record
	if err := ds.loadJSON(datasetResults, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []record{}
	}
	ds.results = results
	return results, nil
}

// Faq returns the cached FAQ entries, loading them on first access. Entries
// are kept as raw decoded values because an entry may be an object or a
// bare string.
func (ds *DataStore) Faq() ([]any, error) {
	ds.mu.RLock()
	cached := ds.faq
	ds.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.faq != nil {
		return ds.faq, nil
	}

	var faq []any
	if err := ds.loadJSON(datasetFaq, &faq); err != nil {
		return nil, err
	}
	if faq == nil {
		faq = []any{}
	}
	ds.faq = faq
	return faq, nil
}

// NextFixture returns the first fixture, or nil when the dataset is empty.
func (ds *DataStore) NextFixture() (record, error) {
	fixtures, err := ds.Fixtures()
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, nil
	}
	return fixtures[0], nil
}

// LatestResult returns the first result, or nil when the dataset is empty.
func (ds *DataStore) LatestResult() (record, error) {
	results, err := ds.Results()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// UpcomingFixtures returns a prefix of the fixture list. A non-positive
// limit falls back to the configured default.
func (ds *DataStore) UpcomingFixtures(limit int) ([]record, error) {
	if limit <= 0 {
		limit = ds.upcomingLimit
	}

	fixtures, err := ds.Fixtures()
	if err != nil {
		return nil, err
	}
	if limit > len(fixtures) {
		limit = len(fixtures)
	}
	return fixtures[:limit], nil
}

// FindFixtureByOpponent returns the first fixture whose home or away team
// contains name (case-insensitive), or nil for an empty name or no match.
func (ds *DataStore) FindFixtureByOpponent(name string) (record, error) {
	fixtures, err := ds.Fixtures()
	if err != nil {
		return nil, err
	}
	return findByOpponent(fixtures, name), nil
}

// FindResultByOpponent is FindFixtureByOpponent over the results dataset.
func (ds *DataStore) FindResultByOpponent(name string) (record, error) {
	results, err := ds.Results()
	if err != nil {
		return nil, err
	}
	return findByOpponent(results, name), nil
}

func findByOpponent(recs []record, name string) record {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}

	for _, rec := range recs {
		for _, key := range opponentKeys {
			if team, ok := rec[key].(string); ok {
				if strings.Contains(strings.ToLower(team), name) {
					return rec
				}
			}
		}
	}
	return nil
}

// SearchFaq scores every FAQ entry by how many of its keywords occur in the
// message (case-insensitive substring) and returns the entry with the
// strictly highest score. Ties keep the earliest entry; a zero best score
// returns nil.
func (ds *DataStore) SearchFaq(message string) (any, error) {
	faq, err := ds.Faq()
	if err != nil {
		return nil, err
	}

	msg := strings.ToLower(message)

	var best any
	bestScore := 0

	for _, item := range faq {
		score := 0
		for _, kw := range faqKeywords(item) {
			if strings.Contains(msg, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = item
		}
	}

	if bestScore == 0 {
		return nil, nil
	}
	return best, nil
}

// ClearCache drops all four cached datasets so the next access reloads
// from disk.
func (ds *DataStore) ClearCache() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.clubInfo = nil
	ds.fixtures = nil
	ds.results = nil
	ds.faq = nil
}

// ClearDataset drops one cached dataset. Returns false for an unknown name.
func (ds *DataStore) ClearDataset(name string) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	switch name {
	case datasetClubInfo:
		ds.clubInfo = nil
	case datasetFixtures:
		ds.fixtures = nil
	case datasetResults:
		ds.results = nil
	case datasetFaq:
		ds.faq = nil
	default:
		return false
	}
	return true
}

// CacheInfo reports which datasets are currently cached.
func (ds *DataStore) CacheInfo() map[string]bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	return map[string]bool{
		datasetClubInfo: ds.clubInfo != nil,
		datasetFixtures: ds.fixtures != nil,
		datasetResults:  ds.results != nil,
		datasetFaq:      ds.faq != nil,
	}
}
