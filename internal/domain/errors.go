package domain

import "errors"

var (
	// ErrUnknownPostType is returned when a requested post type is not one
	// of the supported categories.
	ErrUnknownPostType = errors.New("unknown post type")

	// ErrChannelNotFound is returned when a destination channel cannot be
	// resolved at schedule-creation time.
	ErrChannelNotFound = errors.New("channel not found")
)
