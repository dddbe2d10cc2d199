package collector

import (
	"context"
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Sentinel errors for the failure classes a list call can hit. Callers
// match them with errors.Is; the wrapped message carries the operation and
// the underlying cause.
var (
	// ErrAuthentication covers missing or rejected credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrPermission covers RBAC denials on the list verb.
	ErrPermission = errors.New("permission denied")

	// ErrConnection covers an unreachable or failing API server.
	ErrConnection = errors.New("cluster unreachable")
)

// classifyListError maps an API error from a list call onto the sentinel
// taxonomy. Context cancellation passes through untouched so callers can
// distinguish interruption from cluster failures.
func classifyListError(resource, namespace string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch {
	case apierrors.IsUnauthorized(err):
		return fmt.Errorf("%w: listing %s in namespace %q: %v", ErrAuthentication, resource, namespace, err)
	case apierrors.IsForbidden(err):
		return fmt.Errorf("%w: listing %s in namespace %q: %v", ErrPermission, resource, namespace, err)
	default:
		return fmt.Errorf("%w: listing %s in namespace %q: %v", ErrConnection, resource, namespace, err)
	}
}
