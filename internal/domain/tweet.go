// Package domain contains the core business entities and rules.
package domain

// Default values used when a field cannot be located in the request text.
const (
	DefaultAuthorName = "User"
	DefaultText       = "Hello world!"

	// MaxTextLen caps the tweet body so the rendered layout always fits
	// the fixed canvas.
	MaxTextLen = 280
)

// TweetDescription is the structured record extracted from a free-text
// request. It is always fully populated: extraction falls back to defaults
// for any field it cannot locate.
type TweetDescription struct {
	AuthorName   string `json:"display_name"`
	AuthorHandle string `json:"username"`
	Text         string `json:"tweet_text"`
	Likes        int    `json:"likes"`
	Retweets     int    `json:"retweets"`
	Replies      int    `json:"replies"`
	Views        int    `json:"views"`
	Verified     bool   `json:"verified"`

	// Timestamp is only drawn when set. Rendering must be deterministic,
	// so there is no wall-clock fallback.
	Timestamp string `json:"timestamp,omitempty"`
}

// GeneratedImage pairs a rendered PNG with the description that produced it.
// Immutable once produced; the caller owns it until it is handed to a store.
type GeneratedImage struct {
	ID          string
	PNG         []byte
	Description TweetDescription
}
