package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Engine composes a user-facing reply for a classified message. It owns no
// state beyond a handle to the data store; all per-intent behavior lives in
// the compose methods below.
type Engine struct {
	store *DataStore
	log   *zap.SugaredLogger
}

func NewEngine(store *DataStore, log *zap.SugaredLogger) *Engine {
	return &Engine{store: store, log: log}
}

func makeReply(text string, buttons ...Button) Reply {
	if buttons == nil {
		buttons = []Button{}
	}
	return Reply{Text: text, Buttons: buttons}
}

// HandleMessage classifies the message and composes the reply. This is the
// sole recovery boundary: any composition failure (typically a missing or
// corrupt dataset) is logged and degraded to a generic apology reply.
func (e *Engine) HandleMessage(message string) Reply {
	intent := DetectIntent(message)

	reply, err := e.compose(intent, message)
	if err != nil {
		e.log.Errorw("message composition failed", "intent", intent, "error", err)
		return makeReply("Something went wrong. Please try again.",
			Button{Label: "Help", Value: "help"},
		)
	}
	return reply
}

func (e *Engine) compose(intent, message string) (Reply, error) {
	switch intent {
	case IntentGreeting:
		return makeReply(
			"Hi! I’m the Luton Town FC chatbot. Ask me about fixtures, results, tickets, or club info.",
			Button{Label: "Next fixture", Value: "fixtures"},
			Button{Label: "Latest result", Value: "results"},
			Button{Label: "Tickets", Value: "tickets"},
			Button{Label: "Club info", Value: "club info"},
		), nil

	case IntentHelp:
		return makeReply(
			"Try: “next fixture”, “latest result”, “ticket prices”, or “club info”.",
			Button{Label: "Fixtures", Value: "fixtures"},
			Button{Label: "Results", Value: "results"},
			Button{Label: "Tickets", Value: "tickets"},
			Button{Label: "Club info", Value: "club info"},
		), nil

	case IntentFixtures:
		return e.composeFixtures(message)

	case IntentResults:
		return e.composeResults(message)

	case IntentClubInfo:
		return e.composeClubInfo()

	case IntentTickets:
		return e.composeTickets(message)

	default:
		return e.composeFallback(message)
	}
}

func (e *Engine) composeFixtures(message string) (Reply, error) {
	msg := normalizeMessage(message)

	if strings.Contains(msg, "upcoming") || strings.Contains(msg, "schedule") {
		return e.composeUpcoming()
	}

	fixture, err := e.store.NextFixture()
	if err != nil {
		return Reply{}, err
	}

	// A message naming a specific opponent answers with that fixture
	// instead of the next one.
	if name := e.mentionedOpponent(msg, datasetFixtures); name != "" {
		found, err := e.store.FindFixtureByOpponent(name)
		if err != nil {
			return Reply{}, err
		}
		if found != nil {
			fixture = found
		}
	}

	if fixture == nil {
		return makeReply("I couldn’t find the next fixture right now."), nil
	}

	opponent := stringField(fixture, "Unknown opponent", opponentKeys...)
	date := stringField(fixture, "Unknown date", fixtureDateKeys...)
	venue := stringField(fixture, "Unknown venue", venueKeys...)

	return makeReply(
		fmt.Sprintf("Next fixture: %s on %s (%s).", opponent, date, venue),
		Button{Label: "Latest result", Value: "results"},
		Button{Label: "Tickets", Value: "tickets"},
	), nil
}

func (e *Engine) composeUpcoming() (Reply, error) {
	fixtures, err := e.store.UpcomingFixtures(0)
	if err != nil {
		return Reply{}, err
	}
	if len(fixtures) == 0 {
		return makeReply("I couldn’t find any upcoming fixtures right now."), nil
	}

	lines := make([]string, 0, len(fixtures)+1)
	lines = append(lines, "Upcoming fixtures:")
	for _, f := range fixtures {
		opponent := stringField(f, "Unknown opponent", opponentKeys...)
		date := stringField(f, "Unknown date", fixtureDateKeys...)
		venue := stringField(f, "Unknown venue", venueKeys...)
		lines = append(lines, fmt.Sprintf("- %s on %s (%s)", opponent, date, venue))
	}

	return makeReply(
		strings.Join(lines, "\n"),
		Button{Label: "Latest result", Value: "results"},
		Button{Label: "Tickets", Value: "tickets"},
	), nil
}

func (e *Engine) composeResults(message string) (Reply, error) {
	result, err := e.store.LatestResult()
	if err != nil {
		return Reply{}, err
	}

	msg := normalizeMessage(message)
	if name := e.mentionedOpponent(msg, datasetResults); name != "" {
		found, err := e.store.FindResultByOpponent(name)
		if err != nil {
			return Reply{}, err
		}
		if found != nil {
			result = found
		}
	}

	if result == nil {
		return makeReply("I couldn’t find the latest result right now."), nil
	}

	opponent := stringField(result, "Unknown opponent", opponentKeys...)
	date := stringField(result, "Unknown date", resultDateKeys...)

	// Score formats vary between data authors; only print a scoreline when
	// both sides are present.
	scoreText := "Luton vs " + opponent
	lutonScore, haveLuton := scoreField(result, homeScoreKeys...)
	oppScore, haveOpp := scoreField(result, awayScoreKeys...)
	if haveLuton && haveOpp {
		scoreText = fmt.Sprintf("Luton %s-%s %s", lutonScore, oppScore, opponent)
	}

	return makeReply(
		fmt.Sprintf("Latest result: %s (%s).", scoreText, date),
		Button{Label: "Next fixture", Value: "fixtures"},
		Button{Label: "Club info", Value: "club info"},
	), nil
}

func (e *Engine) composeClubInfo() (Reply, error) {
	info, err := e.store.ClubInfo()
	if err != nil {
		return Reply{}, err
	}
	if len(info) == 0 {
		return makeReply("I couldn’t load club info right now."), nil
	}

	founded := stringField(info, "Unknown", "founded")
	stadium := stringField(info, "Unknown", "stadium")
	nickname := stringField(info, "Unknown", "nickname")

	return makeReply(
		fmt.Sprintf("Luton Town FC: Founded %s. Stadium: %s. Nickname: %s.", founded, stadium, nickname),
		Button{Label: "Fixtures", Value: "fixtures"},
		Button{Label: "Help", Value: "help"},
	), nil
}

func (e *Engine) composeTickets(message string) (Reply, error) {
	item, err := e.store.SearchFaq(message)
	if err != nil {
		return Reply{}, err
	}

	if answer, ok := faqAnswer(item); ok {
		return makeReply(answer,
			Button{Label: "Next fixture", Value: "fixtures"},
			Button{Label: "Help", Value: "help"},
		), nil
	}

	return makeReply(
		"I can help with ticket info. Try asking: “ticket prices” or “how to buy tickets”.",
		Button{Label: "Ticket prices", Value: "ticket prices"},
		Button{Label: "How to buy", Value: "how to buy tickets"},
	), nil
}

func (e *Engine) composeFallback(message string) (Reply, error) {
	// Smart fallback: try the FAQ before giving up.
	item, err := e.store.SearchFaq(message)
	if err != nil {
		return Reply{}, err
	}

	if answer, ok := faqAnswer(item); ok {
		return makeReply(answer,
			Button{Label: "Fixtures", Value: "fixtures"},
			Button{Label: "Results", Value: "results"},
		), nil
	}

	return makeReply(
		"Sorry — I didn’t understand that. Ask about fixtures, results, tickets, or club info.",
		Button{Label: "Help", Value: "help"},
		Button{Label: "Fixtures", Value: "fixtures"},
		Button{Label: "Results", Value: "results"},
		Button{Label: "Tickets", Value: "tickets"},
	), nil
}

// mentionedOpponent returns the first team name from the given dataset that
// occurs in the normalized message. The club's own name never counts as an
// opponent mention.
func (e *Engine) mentionedOpponent(msg, dataset string) string {
	var recs []record
	var err error
	if dataset == datasetResults {
		recs, err = e.store.Results()
	} else {
		recs, err = e.store.Fixtures()
	}
	if err != nil {
		return ""
	}

	for _, rec := range recs {
		for _, key := range opponentKeys {
			team, ok := rec[key].(string)
			if !ok || team == "" {
				continue
			}
			lower := strings.ToLower(team)
			if strings.Contains(lower, "luton") {
				continue
			}
			if strings.Contains(msg, lower) {
				return team
			}
		}
	}
	return ""
}
