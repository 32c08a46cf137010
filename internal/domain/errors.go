package domain

import (
	"errors"
	"fmt"
)

// ErrDeadTransientURI is returned when a shortcut targets a process-local
// transient reference (blob-style) with no inline byte payload: pinning it
// would produce a dead shortcut after the next restart.
var ErrDeadTransientURI = errors.New("transient content reference with no inline payload")

// SizeExceededError blocks shortcut creation for oversized videos.
type SizeExceededError struct {
	Size    int64
	Ceiling int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("video of %d bytes exceeds the %d byte ceiling", e.Size, e.Ceiling)
}

// NativeCreationError reports a post-validation failure from the native
// pinning service. It is surfaced as a boolean outcome plus a logged reason,
// never thrown past the pipeline boundary.
type NativeCreationError struct {
	Reason string
}

func (e *NativeCreationError) Error() string {
	return fmt.Sprintf("native shortcut creation failed: %s", e.Reason)
}
