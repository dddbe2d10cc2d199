package resolver

import (
	"fmt"
	"net"
	"strconv"
)

// Kind describes how a resolved URL reaches its service.
type Kind string

const (
	// KindServiceDNS is the stable cluster DNS name of the service.
	KindServiceDNS Kind = "service-dns"
	// KindClusterIP is the virtual ClusterIP address of the service.
	KindClusterIP Kind = "cluster-ip"
	// KindHeadlessDNS is a per-endpoint DNS record of a headless service.
	KindHeadlessDNS Kind = "headless-dns"
	// KindPodIP is the direct IP of a backing pod.
	KindPodIP Kind = "pod-ip"
	// KindExternal is a LoadBalancer ingress IP or hostname.
	KindExternal Kind = "external"
)

// URL is one reachable access point for a service.
type URL struct {
	Scheme string `json:"scheme" yaml:"scheme"`
	Host   string `json:"host" yaml:"host"`
	Port   int32  `json:"port" yaml:"port"`
	Label  string `json:"label" yaml:"label"`
	Kind   Kind   `json:"kind" yaml:"kind"`
}

// String renders the URL in scheme://host:port form. IPv6 hosts are
// bracketed via net.JoinHostPort.
func (u URL) String() string {
	return fmt.Sprintf("%s://%s", u.Scheme, net.JoinHostPort(u.Host, strconv.Itoa(int(u.Port))))
}

// PodEntry is one ready endpoint address with its direct URLs.
// Name is "unknown" when the endpoint's target reference no longer
// resolves to a pod.
type PodEntry struct {
	Name string `json:"name" yaml:"name"`
	IP   string `json:"ip" yaml:"ip"`
	URLs []URL  `json:"urls" yaml:"urls"`
}

// ServiceResult holds every resolved access point for one service, in
// display order: service DNS, ClusterIP, headless records, pod entries,
// external ingress.
type ServiceResult struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Type      string `json:"type" yaml:"type"`
	Headless  bool   `json:"headless" yaml:"headless"`
	DNSName   string `json:"dnsName" yaml:"dnsName"`

	ServiceURLs   []URL      `json:"serviceURLs,omitempty" yaml:"serviceURLs,omitempty"`
	ClusterIPURLs []URL      `json:"clusterIPURLs,omitempty" yaml:"clusterIPURLs,omitempty"`
	HeadlessURLs  []URL      `json:"headlessURLs,omitempty" yaml:"headlessURLs,omitempty"`
	Pods          []PodEntry `json:"pods,omitempty" yaml:"pods,omitempty"`
	ExternalURLs  []URL      `json:"externalURLs,omitempty" yaml:"externalURLs,omitempty"`
}
