package intent

import (
	"context"

	"github.com/pindrop/pindrop/internal/logger"
)

// CallCapability is the result of the call-permission pre-flight, consumed by
// Build as a pure input.
type CallCapability struct {
	Granted bool
}

// PermissionChecker is the slice of the native bridge the pre-flight needs.
type PermissionChecker interface {
	CheckCallPermission(ctx context.Context) (bool, error)
	RequestCallPermission(ctx context.Context) (bool, error)
}

// PreflightCall checks call permission and requests it once if absent.
// The outcome never blocks directive construction: a denied or failed check
// simply yields an ungranted capability and the dial proxy handles denial at
// invocation time.
func PreflightCall(ctx context.Context, checker PermissionChecker, log logger.Logger) CallCapability {
	granted, err := checker.CheckCallPermission(ctx)
	if err != nil {
		log.Warn("call permission check failed", logger.Error(err))
		return CallCapability{}
	}
	if granted {
		return CallCapability{Granted: true}
	}

	granted, err = checker.RequestCallPermission(ctx)
	if err != nil {
		log.Warn("call permission request failed", logger.Error(err))
		return CallCapability{}
	}
	return CallCapability{Granted: granted}
}
