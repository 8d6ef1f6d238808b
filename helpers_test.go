package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testClubInfoJSON = `{"founded": 1885, "stadium": "Kenilworth Road", "nickname": "The Hatters"}`

	testFixturesJSON = `[
		{"homeTeam": "Luton", "awayTeam": "Example FC", "date": "2026-02-15", "venue": "Home"},
		{"opponent": "Wycombe Wanderers", "kickoff": "2026-02-22", "location": "Adams Park"},
		{"opposition": "Stevenage", "time": "2026-03-01", "ground": "Kenilworth Road"}
	]`

	testResultsJSON = `[
		{"opponent": "Sample United", "lutonScore": 2, "opponentScore": 1, "date": "2026-02-08"},
		{"homeTeam": "Luton", "awayTeam": "Bradford City", "homeScore": 0, "awayScore": 0, "playedOn": "2026-02-01"}
	]`

	testFaqJSON = `[
		{"keywords": ["ticket", "price", "prices"], "answer": "Tickets cost £20."},
		{"keywords": ["stadium", "ground"], "text": "Luton Town FC play at Kenilworth Road."},
		"Contact the club for anything else."
	]`
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func writeDataset(t *testing.T, dir, dataset, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset+".json"), []byte(content), 0o644))
}

// newTestStore builds a DataStore over a temp directory holding the given
// datasets. Datasets not listed are simply absent from the directory.
func newTestStore(t *testing.T, datasets map[string]string) *DataStore {
	t.Helper()

	dir := t.TempDir()
	for dataset, content := range datasets {
		writeDataset(t, dir, dataset, content)
	}

	store, err := NewDataStore(dir, 5, testLogger())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func defaultDatasets() map[string]string {
	return map[string]string{
		datasetClubInfo: testClubInfoJSON,
		datasetFixtures: testFixturesJSON,
		datasetResults:  testResultsJSON,
		datasetFaq:      testFaqJSON,
	}
}
