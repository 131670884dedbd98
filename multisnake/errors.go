package multisnake

import "errors"

var (
	// ErrNoImage is returned by stages that need an image before SetImage.
	ErrNoImage = errors.New("multisnake: no image")

	// ErrEmptySequence is returned by ProcessSequence without frames.
	ErrEmptySequence = errors.New("multisnake: empty sequence")

	// ErrFrameIndex is returned when a document has no frame at the index.
	ErrFrameIndex = errors.New("multisnake: frame index out of range")
)
