package main

import (
	"fmt"
	"strconv"
)

// The two upstream data feeds were authored independently and disagree on key
// names, so every field read probes an ordered list of synonyms and uses the
// first present, non-null value.
var (
	opponentKeys    = []string{"opponent", "opposition", "awayTeam", "homeTeam"}
	fixtureDateKeys = []string{"date", "kickoff", "time"}
	venueKeys       = []string{"venue", "location", "ground"}
	resultDateKeys  = []string{"date", "playedOn"}
	homeScoreKeys   = []string{"lutonScore", "homeScore", "scoreFor"}
	awayScoreKeys   = []string{"opponentScore", "awayScore", "scoreAgainst"}
	faqAnswerKeys   = []string{"answer", "response", "text"}
)

// firstValue returns the first present, non-null value among keys.
func firstValue(rec record, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := rec[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringField probes keys in order and renders the first hit as text,
// or returns fallback when every key is absent or null.
func stringField(rec record, fallback string, keys ...string) string {
	v, ok := firstValue(rec, keys...)
	if !ok {
		return fallback
	}
	return renderValue(v)
}

// scoreField probes keys in order for a score value. The second return is
// false when no key holds a value, which the composer uses to drop the
// score from the reply rather than print a placeholder.
func scoreField(rec record, keys ...string) (string, bool) {
	v, ok := firstValue(rec, keys...)
	if !ok {
		return "", false
	}
	return renderValue(v), true
}

// renderValue formats a decoded JSON value for a reply sentence. Whole
// numbers print without a decimal point (JSON numbers decode as float64).
func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// faqAnswer extracts the answer text from a FAQ entry. Entries are usually
// objects with the answer under one of several keys, but a degenerate
// variant stores the entry as a bare string.
func faqAnswer(item any) (string, bool) {
	switch t := item.(type) {
	case string:
		return t, t != ""
	case record:
		v, ok := firstValue(t, faqAnswerKeys...)
		if !ok {
			return "", false
		}
		if s, ok := v.(string); ok {
			return s, s != ""
		}
		return renderValue(v), true
	default:
		return "", false
	}
}

// faqKeywords extracts the trigger keywords from a FAQ entry. Bare-string
// entries have no keywords and so can never win the FAQ search.
func faqKeywords(item any) []string {
	rec, ok := item.(record)
	if !ok {
		return nil
	}

	var out []string
	switch kws := rec["keywords"].(type) {
	case []any:
		for _, kw := range kws {
			if s, ok := kw.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = kws
	case string:
		out = append(out, kws)
	}
	return out
}
