// Package presenter renders resolved services as grouped plain text. It is
// pure formatting: callers decide where the text goes.
package presenter

import (
	"fmt"
	"strings"

	"github.com/svcurls/svcurls/pkg/resolver"
)

// Render formats the resolved results for one namespace, grouped by service
// in resolver order: service DNS URLs, ClusterIP URLs, headless DNS
// records, per-pod entries, external ingress. An empty result renders an
// explicit no-match message rather than nothing.
func Render(namespace, pattern string, results []*resolver.ServiceResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Namespace: %s ===\n", namespace)
	if pattern != "" {
		fmt.Fprintf(&b, "Filter: %s\n", pattern)
	}

	if len(results) == 0 {
		b.WriteString("\nNo services matched.\n")
		return b.String()
	}

	for _, res := range results {
		fmt.Fprintf(&b, "\nService: %s (%s)\n", res.Name, res.Type)

		for _, u := range res.ServiceURLs {
			fmt.Fprintf(&b, "  DNS URL:       %s (%s)\n", u, u.Label)
		}
		for _, u := range res.ClusterIPURLs {
			fmt.Fprintf(&b, "  ClusterIP URL: %s (%s)\n", u, u.Label)
		}
		for _, u := range res.HeadlessURLs {
			fmt.Fprintf(&b, "  Headless DNS:  %s (%s)\n", u, u.Label)
		}

		for _, pod := range res.Pods {
			fmt.Fprintf(&b, "  Pod: %s\n", pod.Name)
			for _, u := range pod.URLs {
				fmt.Fprintf(&b, "    IP URL: %s (%s)\n", u, u.Label)
			}
		}

		if len(res.ExternalURLs) > 0 {
			b.WriteString("  External:\n")
			for _, u := range res.ExternalURLs {
				fmt.Fprintf(&b, "    %s (%s)\n", u, u.Label)
			}
		}
	}

	return b.String()
}
