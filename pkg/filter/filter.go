// Package filter selects services by name against an optional regular
// expression.
package filter

import (
	"errors"
	"fmt"
	"regexp"

	corev1 "k8s.io/api/core/v1"
)

// ErrInvalidPattern is returned when the filter pattern does not compile.
// It is fatal and raised before any network call is made.
var ErrInvalidPattern = errors.New("invalid filter pattern")

// Filter matches service names. The zero pattern matches everything.
// Matching is case-sensitive and unanchored, following the regexp engine's
// substring semantics.
type Filter struct {
	pattern *regexp.Regexp
}

// New compiles a filter from the pattern. An empty pattern yields a filter
// that passes all services.
func New(pattern string) (*Filter, error) {
	if pattern == "" {
		return &Filter{}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &Filter{pattern: re}, nil
}

// Pattern returns the source pattern, empty for the match-all filter.
func (f *Filter) Pattern() string {
	if f.pattern == nil {
		return ""
	}
	return f.pattern.String()
}

// Matches reports whether a service name passes the filter.
func (f *Filter) Matches(name string) bool {
	return f.pattern == nil || f.pattern.MatchString(name)
}

// Select returns the services whose names pass the filter, preserving the
// input order.
func (f *Filter) Select(services []corev1.Service) []corev1.Service {
	if f.pattern == nil {
		return services
	}
	var selected []corev1.Service
	for _, svc := range services {
		if f.Matches(svc.Name) {
			selected = append(selected, svc)
		}
	}
	return selected
}
