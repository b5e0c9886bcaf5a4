package anim

import "errors"

// Domain errors for animation operations.
var (
	// ErrLastFrame indicates a refused attempt to delete the only frame.
	// This is an informational condition, not a failure: the animation
	// is guaranteed non-empty and the store is left unchanged.
	ErrLastFrame = errors.New("anim: cannot delete the only frame")

	// ErrShapeBounds indicates a grid dimension outside [MinDim, MaxDim].
	ErrShapeBounds = errors.New("anim: grid dimension out of bounds")

	// ErrFrameIndex indicates a frame index outside [0, len).
	ErrFrameIndex = errors.New("anim: frame index out of range")

	// ErrCellBounds indicates a cell coordinate outside the grid shape.
	ErrCellBounds = errors.New("anim: cell out of bounds")

	// ErrShapeMismatch indicates frames with differing shapes where a
	// uniform shape is required.
	ErrShapeMismatch = errors.New("anim: frames must share one grid shape")

	// ErrNoFrames indicates an attempt to install an empty frame sequence.
	ErrNoFrames = errors.New("anim: animation must contain at least one frame")
)
