package domain

import "errors"

var (
	// ErrImageNotFound is returned when the image ID is unknown or expired.
	ErrImageNotFound = errors.New("image not found or expired")

	// ErrRenderFailed is returned when image composition fails.
	ErrRenderFailed = errors.New("failed to render tweet image")
)
