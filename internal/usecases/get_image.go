package usecases

import (
	"context"

	"tweetshot/pkg/log"
)

// GetImageUseCase serves previously generated images by ID.
type GetImageUseCase struct {
	store ImageStore
}

// NewGetImageUseCase creates a new GetImageUseCase.
func NewGetImageUseCase(store ImageStore) *GetImageUseCase {
	return &GetImageUseCase{store: store}
}

// Execute returns the PNG bytes for an image ID.
// Returns domain.ErrImageNotFound when the ID is unknown or expired.
func (uc *GetImageUseCase) Execute(ctx context.Context, id string) ([]byte, error) {
	png, err := uc.store.GetImage(ctx, id)
	if err != nil {
		log.GlobalDebugCtx(ctx, "image lookup miss", "image_id", id)
		return nil, err
	}
	return png, nil
}
