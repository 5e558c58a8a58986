// Package domain defines the types of the Mitra reply engine: the user snapshot it
// reads, the tiers it classifies into, the remote request/reply contract and the
// response it always returns.
package domain

// ============================================================
// Input: what the engine reads
// ============================================================

// DefaultRegion is used when the user record has no region.
const DefaultRegion = "Global"

// UserSnapshot is the read-only slice of user state the engine needs.
type UserSnapshot struct {
	ID     string
	Region string
	DVI    int
}

// ChatRequest is the body of POST /api/mitra/chat.
// The frontend also sends user_id/region/dvi; the engine ignores them and reads the store.
type ChatRequest struct {
	Message string `json:"message"`
}

// ============================================================
// Output: what the engine returns
// ============================================================

// Source tags where a reply came from.
type Source string

const (
	// SourceRule: rule engine, remote disabled by configuration.
	SourceRule Source = "rule"
	// SourceRemote: reply produced by the language model.
	SourceRemote Source = "remote"
	// SourceFallback: rule engine after the remote was unavailable or answered empty.
	SourceFallback Source = "fallback"
	// SourceError: rule engine after a remote transport/parse/timeout failure.
	SourceError Source = "error"
)

// MaxSuggestions bounds every suggestion list the engine emits.
const MaxSuggestions = 4

// AssistantResponse is the payload of POST /api/mitra/chat.
type AssistantResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
	Source      Source   `json:"source"`
	Detail      string   `json:"detail,omitempty"`
}

// ============================================================
// Tiers
// ============================================================

// TierDefinition is one contiguous DVI band: [Low, High).
type TierDefinition struct {
	Low      int
	High     int
	Name     string
	Guidance string
}

// Tier is the classifier output. NextCap is nil when no finite cap is shown.
type Tier struct {
	Name     string
	Guidance string
	NextCap  *int
}

// ============================================================
// Remote contract
// ============================================================

// RemoteRequest is what every provider receives.
type RemoteRequest struct {
	Message string
	UserID  string
	Region  string
	DVI     int
}

// RemoteReply is a normalised provider answer.
type RemoteReply struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}
