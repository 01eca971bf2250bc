package usecases_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tweetshot/internal/domain"
	"tweetshot/internal/usecases"
)

// MockParser is a mock implementation of RequestParser.
type MockParser struct {
	desc domain.TweetDescription
}

func (m *MockParser) Extract(text string) domain.TweetDescription {
	return m.desc
}

// MockRenderer is a mock implementation of TweetRenderer.
type MockRenderer struct {
	png []byte
	err error
}

func (m *MockRenderer) Render(desc domain.TweetDescription) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.png, nil
}

// MockStore is a mock implementation of ImageStore.
type MockStore struct {
	images       map[string][]byte
	descriptions map[string]domain.TweetDescription
	setErr       error
}

func NewMockStore() *MockStore {
	return &MockStore{
		images:       make(map[string][]byte),
		descriptions: make(map[string]domain.TweetDescription),
	}
}

func (m *MockStore) SetImage(ctx context.Context, id string, png []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.images[id] = png
	return nil
}

func (m *MockStore) GetImage(ctx context.Context, id string) ([]byte, error) {
	png, ok := m.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return png, nil
}

func (m *MockStore) SetDescription(ctx context.Context, id string, desc domain.TweetDescription) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.descriptions[id] = desc
	return nil
}

func (m *MockStore) GetDescription(ctx context.Context, id string) (domain.TweetDescription, error) {
	desc, ok := m.descriptions[id]
	if !ok {
		return domain.TweetDescription{}, domain.ErrImageNotFound
	}
	return desc, nil
}

// GenerateTweetUseCase tests

func TestGenerateTweetUseCase_Execute_Success(t *testing.T) {
	// Arrange
	parser := &MockParser{desc: domain.TweetDescription{
		AuthorName:   "john",
		AuthorHandle: "john",
		Text:         "hello world",
	}}
	renderer := &MockRenderer{png: []byte("png-bytes")}
	store := NewMockStore()
	uc := usecases.NewGenerateTweetUseCase(parser, renderer, store)

	// Act
	generated, err := uc.Execute(context.Background(), "create a tweet for john saying hello world", nil)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(generated.ID, "tweet_") || !strings.HasSuffix(generated.ID, ".png") {
		t.Errorf("ID: got %v, want tweet_<uuid>.png", generated.ID)
	}
	if string(generated.PNG) != "png-bytes" {
		t.Errorf("PNG: got %v, want png-bytes", string(generated.PNG))
	}
	if generated.Description.AuthorHandle != "john" {
		t.Errorf("handle: got %v, want john", generated.Description.AuthorHandle)
	}
}

func TestGenerateTweetUseCase_Execute_PersistsImageAndDescription(t *testing.T) {
	// Arrange
	parser := &MockParser{desc: domain.TweetDescription{AuthorHandle: "bob", Text: "hi"}}
	renderer := &MockRenderer{png: []byte("data")}
	store := NewMockStore()
	uc := usecases.NewGenerateTweetUseCase(parser, renderer, store)

	// Act
	generated, err := uc.Execute(context.Background(), "anything", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if _, err := store.GetImage(context.Background(), generated.ID); err != nil {
		t.Errorf("expected image to be stored: %v", err)
	}
	stored, err := store.GetDescription(context.Background(), generated.ID)
	if err != nil {
		t.Errorf("expected description to be stored: %v", err)
	}
	if stored.AuthorHandle != "bob" {
		t.Errorf("stored handle: got %v, want bob", stored.AuthorHandle)
	}
}

func TestGenerateTweetUseCase_Execute_UniqueIDs(t *testing.T) {
	// Arrange
	parser := &MockParser{desc: domain.TweetDescription{Text: "hi"}}
	renderer := &MockRenderer{png: []byte("data")}
	store := NewMockStore()
	uc := usecases.NewGenerateTweetUseCase(parser, renderer, store)

	// Act
	first, _ := uc.Execute(context.Background(), "one", nil)
	second, _ := uc.Execute(context.Background(), "two", nil)

	// Assert
	if first.ID == second.ID {
		t.Errorf("expected unique IDs, both were %v", first.ID)
	}
}

func TestGenerateTweetUseCase_Execute_RendererError(t *testing.T) {
	// Arrange
	parser := &MockParser{desc: domain.TweetDescription{Text: "hi"}}
	renderer := &MockRenderer{err: domain.ErrRenderFailed}
	store := NewMockStore()
	uc := usecases.NewGenerateTweetUseCase(parser, renderer, store)

	// Act
	_, err := uc.Execute(context.Background(), "anything", nil)

	// Assert
	if !errors.Is(err, domain.ErrRenderFailed) {
		t.Errorf("got %v, want ErrRenderFailed", err)
	}
	if len(store.images) != 0 {
		t.Error("expected nothing stored after render failure")
	}
}

func TestGenerateTweetUseCase_Execute_StoreError(t *testing.T) {
	// Arrange
	expectedErr := errors.New("store down")
	parser := &MockParser{desc: domain.TweetDescription{Text: "hi"}}
	renderer := &MockRenderer{png: []byte("data")}
	store := NewMockStore()
	store.setErr = expectedErr
	uc := usecases.NewGenerateTweetUseCase(parser, renderer, store)

	// Act
	_, err := uc.Execute(context.Background(), "anything", nil)

	// Assert
	if !errors.Is(err, expectedErr) {
		t.Errorf("got %v, want %v", err, expectedErr)
	}
}

func TestGenerateTweetUseCase_Execute_OverridesApply(t *testing.T) {
	// Arrange
	parser := &MockParser{desc: domain.TweetDescription{
		AuthorName:   "user",
		AuthorHandle: "user",
		Text:         "extracted",
	}}
	renderer := &MockRenderer{png: []byte("data")}
	store := NewMockStore()
	uc := usecases.NewGenerateTweetUseCase(parser, renderer, store)

	overrides := map[string]any{
		"username":   "elonmusk",
		"tweet_text": "overridden",
		"likes":      float64(123), // JSON numbers decode as float64
		"verified":   true,
	}

	// Act
	generated, err := uc.Execute(context.Background(), "whatever", overrides)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := generated.Description
	if d.AuthorHandle != "elonmusk" {
		t.Errorf("handle: got %v, want elonmusk", d.AuthorHandle)
	}
	if d.Text != "overridden" {
		t.Errorf("text: got %v, want overridden", d.Text)
	}
	if d.Likes != 123 {
		t.Errorf("likes: got %v, want 123", d.Likes)
	}
	if !d.Verified {
		t.Error("expected verified override to apply")
	}
}

// GetImageUseCase tests

func TestGetImageUseCase_Execute_Found(t *testing.T) {
	// Arrange
	store := NewMockStore()
	_ = store.SetImage(context.Background(), "tweet_x.png", []byte("png"))
	uc := usecases.NewGetImageUseCase(store)

	// Act
	png, err := uc.Execute(context.Background(), "tweet_x.png")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(png) != "png" {
		t.Errorf("got %v, want png", string(png))
	}
}

func TestGetImageUseCase_Execute_NotFound(t *testing.T) {
	// Arrange
	uc := usecases.NewGetImageUseCase(NewMockStore())

	// Act
	_, err := uc.Execute(context.Background(), "missing.png")

	// Assert
	if !errors.Is(err, domain.ErrImageNotFound) {
		t.Errorf("got %v, want ErrImageNotFound", err)
	}
}
