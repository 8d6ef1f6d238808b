package main

// Intent labels for the classifier. The zero-ish default is IntentFallback.
const (
	IntentGreeting = "greeting"
	IntentFixtures = "fixtures"
	IntentResults  = "results"
	IntentTickets  = "tickets"
	IntentClubInfo = "club_info"
	IntentHelp     = "help"
	IntentFallback = "fallback"
)

// intentRule maps an intent label to its trigger keywords. Rules are scanned
// in order; the first rule with a matching keyword wins.
type intentRule struct {
	Intent   string
	Keywords []string
}

// Button is a quick-reply suggestion attached to a chatbot answer.
// Label is shown to the user, Value is sent back as the next message.
type Button struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Reply is the composed chatbot answer.
type Reply struct {
	Text    string   `json:"text"`
	Buttons []Button `json:"buttons"`
}

// ChatRequest is the POST /chat body. Message is deliberately untyped so the
// handler can reject non-string payloads with a 400 instead of a bind error.
type ChatRequest struct {
	Message any `json:"message"`
}

// ChatResponse is the success envelope for POST /chat.
type ChatResponse struct {
	OK    bool  `json:"ok"`
	Reply Reply `json:"reply"`
}

// ErrorResponse is the failure envelope shared by 400 and 500 responses.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ReloadResponse acknowledges an admin cache reload.
type ReloadResponse struct {
	Message string `json:"message"`
	Dataset string `json:"dataset,omitempty"`
}

// record is a schema-light JSON object. Fixtures, results and club info are
// decoded into records because the two data authors never agreed on key
// names; see fields.go for the ordered-fallback accessors.
type record = map[string]any
