package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringField_ProbesKeysInOrder(t *testing.T) {
	rec := record{
		"opposition": "Wycombe",
		"awayTeam":   "Someone Else",
	}

	// "opponent" is absent, so "opposition" (next in order) wins over
	// "awayTeam" even though both are present.
	assert.Equal(t, "Wycombe", stringField(rec, "Unknown opponent", opponentKeys...))
}

func TestStringField_NullValuesAreSkipped(t *testing.T) {
	rec := record{
		"date":    nil,
		"kickoff": "2026-02-15",
	}

	assert.Equal(t, "2026-02-15", stringField(rec, "Unknown date", fixtureDateKeys...))
}

func TestStringField_FallsBackToPlaceholder(t *testing.T) {
	assert.Equal(t, "Unknown venue", stringField(record{}, "Unknown venue", venueKeys...))
}

func TestStringField_RendersNumbers(t *testing.T) {
	// JSON numbers decode as float64; whole values must not print ".0".
	assert.Equal(t, "1885", stringField(record{"founded": float64(1885)}, "Unknown", "founded"))
}

func TestScoreField(t *testing.T) {
	rec := record{"homeScore": float64(2)}

	score, ok := scoreField(rec, homeScoreKeys...)
	assert.True(t, ok)
	assert.Equal(t, "2", score)

	_, ok = scoreField(rec, awayScoreKeys...)
	assert.False(t, ok)

	// An explicit null score counts as absent.
	_, ok = scoreField(record{"awayScore": nil}, awayScoreKeys...)
	assert.False(t, ok)
}

func TestFaqAnswer(t *testing.T) {
	tests := []struct {
		name   string
		item   any
		want   string
		wantOK bool
	}{
		{"answer key", record{"answer": "A"}, "A", true},
		{"response key", record{"response": "B"}, "B", true},
		{"text key", record{"text": "C"}, "C", true},
		{"answer wins over text", record{"answer": "A", "text": "C"}, "A", true},
		{"bare string entry", "just a string", "just a string", true},
		{"no answer key", record{"question": "Q"}, "", false},
		{"nil entry", nil, "", false},
		{"empty string entry", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := faqAnswer(tt.item)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFaqKeywords(t *testing.T) {
	assert.Equal(t, []string{"ticket", "price"},
		faqKeywords(record{"keywords": []any{"ticket", "price"}}))

	assert.Equal(t, []string{"single"},
		faqKeywords(record{"keywords": "single"}))

	// Bare-string entries carry no keywords.
	assert.Nil(t, faqKeywords("plain string entry"))
	assert.Nil(t, faqKeywords(record{}))
}
