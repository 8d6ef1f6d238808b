package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// greetingTokens are matched against the whole normalized message, not as
// substrings. "highlights" must not greet back.
var greetingTokens = map[string]bool{
	"hi":    true,
	"hey":   true,
	"hello": true,
	"yo":    true,
}

// intentRules is the classifier's rule table. Order matters: a message that
// matches keywords from several rules is classified by the earliest rule.
var intentRules = []intentRule{
	{Intent: IntentGreeting, Keywords: []string{"hi", "hello", "hey", "yo"}},
	{Intent: IntentFixtures, Keywords: []string{"fixture", "fixtures", "next match", "upcoming", "schedule", "when do we play"}},
	{Intent: IntentResults, Keywords: []string{"result", "results", "score", "latest result", "last match", "previous game"}},
	{Intent: IntentTickets, Keywords: []string{"ticket", "tickets", "buy tickets", "prices", "how much", "booking"}},
	{Intent: IntentClubInfo, Keywords: []string{"club info", "about", "stadium", "manager", "history", "kenilworth"}},
	{Intent: IntentHelp, Keywords: []string{"help", "menu", "options", "what can you do"}},
}

// normalizeMessage prepares a message for matching:
// - Unicode NFKD normalization
// - unicode spaces folded to regular spaces
// - lowercase, surrounding whitespace trimmed
func normalizeMessage(text string) string {
	text = norm.NFKD.String(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)

	return strings.ToLower(strings.TrimSpace(text))
}

// DetectIntent classifies a raw message into exactly one intent label.
// Pure function: no data access, deterministic for a given message.
func DetectIntent(message string) string {
	msg := normalizeMessage(message)

	if greetingTokens[msg] {
		return IntentGreeting
	}

	for _, rule := range intentRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return rule.Intent
			}
		}
	}

	return IntentFallback
}
