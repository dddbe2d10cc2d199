package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svcurls/svcurls/pkg/resolver"
)

func TestRender_GroupsByService(t *testing.T) {
	results := []*resolver.ServiceResult{
		{
			Name: "my-service", Namespace: "default", Type: "ClusterIP",
			DNSName: "my-service.default.svc.cluster.local",
			ServiceURLs: []resolver.URL{
				{Scheme: "http", Host: "my-service.default.svc.cluster.local", Port: 80, Label: "http", Kind: resolver.KindServiceDNS},
			},
			ClusterIPURLs: []resolver.URL{
				{Scheme: "http", Host: "10.96.0.1", Port: 80, Label: "http", Kind: resolver.KindClusterIP},
			},
			Pods: []resolver.PodEntry{
				{Name: "my-pod-1", IP: "10.244.0.1", URLs: []resolver.URL{
					{Scheme: "http", Host: "10.244.0.1", Port: 80, Label: "http", Kind: resolver.KindPodIP},
				}},
			},
		},
		{
			Name: "db", Namespace: "default", Type: "Headless", Headless: true,
			DNSName: "db.default.svc.cluster.local",
			HeadlessURLs: []resolver.URL{
				{Scheme: "http", Host: "10-244-0-2.db.default.svc.cluster.local", Port: 5432, Label: "pg", Kind: resolver.KindHeadlessDNS},
			},
		},
	}

	out := Render("default", "", results)

	assert.Contains(t, out, "=== Namespace: default ===")
	assert.Contains(t, out, "Service: my-service (ClusterIP)")
	assert.Contains(t, out, "DNS URL:       http://my-service.default.svc.cluster.local:80 (http)")
	assert.Contains(t, out, "ClusterIP URL: http://10.96.0.1:80 (http)")
	assert.Contains(t, out, "Pod: my-pod-1")
	assert.Contains(t, out, "IP URL: http://10.244.0.1:80 (http)")
	assert.Contains(t, out, "Service: db (Headless)")
	assert.Contains(t, out, "Headless DNS:  http://10-244-0-2.db.default.svc.cluster.local:5432 (pg)")

	// Service blocks appear in resolver order.
	assert.Less(t, strings.Index(out, "Service: my-service"), strings.Index(out, "Service: db"))
}

func TestRender_ShowsFilterPattern(t *testing.T) {
	out := Render("prod", "^api-", nil)
	assert.Contains(t, out, "=== Namespace: prod ===")
	assert.Contains(t, out, "Filter: ^api-")
}

func TestRender_EmptyResultIsExplicit(t *testing.T) {
	out := Render("default", "nomatch", nil)
	assert.Contains(t, out, "No services matched.")
}

func TestRender_ExternalBlock(t *testing.T) {
	results := []*resolver.ServiceResult{
		{
			Name: "edge", Type: "LoadBalancer",
			ExternalURLs: []resolver.URL{
				{Scheme: "https", Host: "edge.example.com", Port: 443, Label: "https", Kind: resolver.KindExternal},
			},
		},
	}

	out := Render("default", "", results)
	assert.Contains(t, out, "External:")
	assert.Contains(t, out, "https://edge.example.com:443 (https)")
}
