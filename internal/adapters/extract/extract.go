// Package extract turns a free-text tweet request into a structured
// domain.TweetDescription. Extraction is best-effort: an ordered chain of
// independent rules runs over the input and any field without a confident
// match falls back to its documented default.
package extract

import (
	"regexp"
	"strings"

	"tweetshot/internal/domain"
)

// Extractor applies the rule chain. It is stateless and safe for
// concurrent use.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Keywords that end an author or body capture.
var boundaryWords = map[string]bool{
	"saying":   true,
	"with":     true,
	"likes":    true,
	"like":     true,
	"retweets": true,
	"retweet":  true,
	"replies":  true,
	"reply":    true,
	"views":    true,
	"view":     true,
	"and":      true,
}

// Author patterns in precedence order; first match wins.
// Each captures the name up to the next keyword boundary.
var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfor\s+@?([^\s]+(?:\s+[^\s]+)*?)\s+saying\b`),
	regexp.MustCompile(`\btweet\s+for\s+@?([^\s]+)`),
	regexp.MustCompile(`\busername\s+@?([^\s]+)`),
	regexp.MustCompile(`\bfor\s+@?([^\s]+)`),
}

var sayingPattern = regexp.MustCompile(`\bsaying\s+(.+)$`)

// Extract converts request text into a fully-populated TweetDescription.
// It never fails; unrecognizable input yields the all-defaults record.
func (e *Extractor) Extract(text string) domain.TweetDescription {
	desc := domain.TweetDescription{
		AuthorName: domain.DefaultAuthorName,
		Text:       domain.DefaultText,
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		desc.AuthorHandle = deriveHandle(desc.AuthorName)
		return desc
	}

	name, explicitHandle, authorSpan := extractAuthor(lower)
	if name != "" {
		desc.AuthorName = name
	}
	if explicitHandle != "" {
		desc.AuthorHandle = explicitHandle
	} else {
		desc.AuthorHandle = deriveHandle(desc.AuthorName)
	}

	if body := extractBody(lower, authorSpan); body != "" {
		desc.Text = capText(body)
	}

	words := strings.Fields(lower)
	desc.Likes = extractMetric(words, "likes")
	desc.Retweets = extractMetric(words, "retweets")
	desc.Replies = extractMetric(words, "replies")
	desc.Views = extractMetric(words, "views")

	desc.Verified = extractVerified(words)

	return desc
}

// extractAuthor runs the author patterns in precedence order and returns the
// trimmed name, an explicit handle when the capture carried an "@" prefix,
// and the [start,end) span of the whole match so body extraction can skip it.
func extractAuthor(lower string) (name, handle string, span [2]int) {
	sayingIdx := strings.Index(lower, "saying")

	for i, re := range authorPatterns {
		loc := re.FindStringSubmatchIndex(lower)
		if loc == nil {
			continue
		}

		// A bare "for <name>" inside the body clause is tweet content,
		// not an author.
		if i == len(authorPatterns)-1 && sayingIdx >= 0 && loc[0] > sayingIdx {
			continue
		}

		capture := lower[loc[2]:loc[3]]
		capture = trimBoundary(capture)
		capture = strings.Trim(capture, ".,!?;:")
		if capture == "" {
			continue
		}

		// The bare "for <name>" form only counts at a clause boundary:
		// reject captures that are boundary keywords themselves.
		if i == len(authorPatterns)-1 && boundaryWords[capture] {
			continue
		}

		explicit := ""
		if loc[2] > 0 && lower[loc[2]-1] == '@' {
			explicit = deriveHandle(capture)
		}

		return capture, explicit, [2]int{loc[0], loc[1]}
	}
	return "", "", [2]int{-1, -1}
}

// trimBoundary cuts a capture at the first boundary keyword.
func trimBoundary(capture string) string {
	words := strings.Fields(capture)
	for i, w := range words {
		if boundaryWords[strings.Trim(w, ".,!?;:")] {
			words = words[:i]
			break
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// extractBody finds the tweet text. "saying <text>" wins; the capture stops
// at the first metrics keyword. Without "saying", the remainder of the
// sentence after the matched author span is used as a fallback.
func extractBody(lower string, authorSpan [2]int) string {
	if m := sayingPattern.FindStringSubmatch(lower); m != nil {
		return trimAtMetrics(m[1])
	}

	// Fallback: strip the author span and any leading command words, then
	// use whatever remains.
	rest := lower
	if authorSpan[0] >= 0 {
		rest = lower[:authorSpan[0]] + " " + lower[authorSpan[1]:]
	}
	rest = trimAtMetrics(rest)

	words := strings.Fields(rest)
	for len(words) > 0 && commandWords[words[0]] {
		words = words[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

var commandWords = map[string]bool{
	"create":   true,
	"generate": true,
	"make":     true,
	"a":        true,
	"an":       true,
	"tweet":    true,
	"post":     true,
	"verified": true,
}

// trimAtMetrics cuts text at the first "with" or metric keyword.
func trimAtMetrics(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		switch strings.Trim(w, ".,!?;:") {
		case "with", "likes", "retweets", "replies", "views":
			words = words[:i]
			return strings.TrimSpace(strings.Join(words, " "))
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// metricWindow bounds how far from its keyword a count may sit.
const metricWindow = 4

// extractMetric finds the value for one metric keyword. The nearest numeric
// token within the window wins, with tokens before the keyword preferred
// (the common "100 likes" order). A keyword with no adjacent number is
// ignored and the metric stays at zero.
func extractMetric(words []string, keyword string) int {
	singular := strings.TrimSuffix(keyword, "s")
	if keyword == "replies" {
		singular = "reply"
	}

	for i, w := range words {
		w = strings.Trim(w, ".,!?;:")
		if w != keyword && w != singular {
			continue
		}

		// Prefer the closest number before the keyword.
		for j := i - 1; j >= 0 && i-j <= metricWindow; j-- {
			if n, ok := parseCount(strings.Trim(words[j], ".,!?;:")); ok {
				return n
			}
		}
		for j := i + 1; j < len(words) && j-i <= metricWindow; j++ {
			if n, ok := parseCount(strings.Trim(words[j], ".,!?;:")); ok {
				return n
			}
		}
	}
	return 0
}

// extractVerified reports whether "verified" appears before the word "tweet".
// When the input has no "tweet" token, any occurrence counts.
func extractVerified(words []string) bool {
	verifiedAt, tweetAt := -1, -1
	for i, w := range words {
		w = strings.Trim(w, ".,!?;:")
		if w == "verified" && verifiedAt < 0 {
			verifiedAt = i
		}
		if w == "tweet" && tweetAt < 0 {
			tweetAt = i
		}
	}
	if verifiedAt < 0 {
		return false
	}
	return tweetAt < 0 || verifiedAt < tweetAt
}

// deriveHandle lower-cases a display name and strips whitespace and "@".
func deriveHandle(name string) string {
	handle := strings.ToLower(name)
	handle = strings.ReplaceAll(handle, "@", "")
	return strings.Join(strings.Fields(handle), "")
}

// capText enforces the body length cap, cutting on a rune boundary.
func capText(text string) string {
	runes := []rune(text)
	if len(runes) <= domain.MaxTextLen {
		return text
	}
	return string(runes[:domain.MaxTextLen])
}
