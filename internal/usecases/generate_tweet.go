package usecases

import (
	"context"

	"github.com/google/uuid"

	"tweetshot/internal/domain"
	"tweetshot/pkg/log"
)

// RequestParser defines the interface for extracting tweet descriptions
// from free text.
type RequestParser interface {
	Extract(text string) domain.TweetDescription
}

// TweetRenderer defines the interface for composing a tweet image.
type TweetRenderer interface {
	Render(desc domain.TweetDescription) ([]byte, error)
}

// ImageStore defines the interface for persisting images and their
// descriptions under an ID with a fixed expiry.
type ImageStore interface {
	SetImage(ctx context.Context, id string, png []byte) error
	GetImage(ctx context.Context, id string) ([]byte, error)
	SetDescription(ctx context.Context, id string, desc domain.TweetDescription) error
	GetDescription(ctx context.Context, id string) (domain.TweetDescription, error)
}

// GenerateTweetUseCase turns request text into a stored tweet screenshot.
type GenerateTweetUseCase struct {
	parser   RequestParser
	renderer TweetRenderer
	store    ImageStore
}

// NewGenerateTweetUseCase creates a new GenerateTweetUseCase.
func NewGenerateTweetUseCase(parser RequestParser, renderer TweetRenderer, store ImageStore) *GenerateTweetUseCase {
	return &GenerateTweetUseCase{
		parser:   parser,
		renderer: renderer,
		store:    store,
	}
}

// Execute extracts a description from text, applies any caller-supplied
// overrides, renders the image, and persists both under a fresh ID.
func (uc *GenerateTweetUseCase) Execute(ctx context.Context, text string, overrides map[string]any) (*domain.GeneratedImage, error) {
	desc := uc.parser.Extract(text)
	applyOverrides(&desc, overrides)

	png, err := uc.renderer.Render(desc)
	if err != nil {
		log.GlobalErrorCtx(ctx, "render failed", "error", err)
		return nil, err
	}

	id := "tweet_" + uuid.New().String() + ".png"

	if err := uc.store.SetImage(ctx, id, png); err != nil {
		return nil, err
	}
	if err := uc.store.SetDescription(ctx, id, desc); err != nil {
		return nil, err
	}

	log.GlobalInfoCtx(ctx, "tweet image generated",
		"image_id", id, "handle", desc.AuthorHandle, "bytes", len(png))

	return &domain.GeneratedImage{ID: id, PNG: png, Description: desc}, nil
}

// applyOverrides merges structured data-part fields onto an extracted
// description. Unknown keys are ignored; counts accept JSON numbers.
func applyOverrides(desc *domain.TweetDescription, overrides map[string]any) {
	if len(overrides) == 0 {
		return
	}

	if v, ok := overrides["display_name"].(string); ok && v != "" {
		desc.AuthorName = v
	}
	if v, ok := overrides["username"].(string); ok && v != "" {
		desc.AuthorHandle = v
	}
	if v, ok := overrides["tweet_text"].(string); ok && v != "" {
		desc.Text = v
	}
	if v, ok := overrides["verified"].(bool); ok {
		desc.Verified = v
	}
	if v, ok := overrides["timestamp"].(string); ok && v != "" {
		desc.Timestamp = v
	}

	for key, dst := range map[string]*int{
		"likes":    &desc.Likes,
		"retweets": &desc.Retweets,
		"replies":  &desc.Replies,
		"views":    &desc.Views,
	} {
		if n, ok := toInt(overrides[key]); ok && n >= 0 {
			*dst = n
		}
	}
}

// toInt accepts the numeric shapes JSON decoding can produce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
