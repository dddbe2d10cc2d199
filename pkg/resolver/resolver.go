// Package resolver maps a Service and its Endpoints/Pods snapshot into the
// set of URLs a client could use to reach it: the stable service DNS name,
// the ClusterIP, per-endpoint headless DNS records, direct pod IPs and any
// LoadBalancer ingress addresses.
package resolver

import (
	"fmt"
	"log/slog"
	"strings"

	corev1 "k8s.io/api/core/v1"
	utilnet "k8s.io/utils/net"
)

const clusterDomain = "svc.cluster.local"

// unknownPodName marks endpoint addresses whose target pod is gone.
const unknownPodName = "unknown"

// Resolver turns one service plus its endpoints into a ServiceResult.
type Resolver struct {
	Namespace string
}

// New creates a Resolver scoped to a namespace.
func New(namespace string) *Resolver {
	return &Resolver{Namespace: namespace}
}

// ServiceDNS returns the cluster DNS name of a service.
func ServiceDNS(service, namespace string) string {
	return fmt.Sprintf("%s.%s.%s", service, namespace, clusterDomain)
}

// EndpointDNS returns the per-endpoint DNS record of a headless service,
// using the dashed-IP form cluster DNS publishes for hostname-less pods.
func EndpointDNS(podIP, service, namespace string) string {
	return fmt.Sprintf("%s.%s.%s.%s", dashIP(podIP), service, namespace, clusterDomain)
}

// dashIP rewrites an IP into its DNS label form: dots and colons become
// dashes (10.244.0.1 -> 10-244-0-1).
func dashIP(ip string) string {
	return strings.NewReplacer(".", "-", ":", "-").Replace(ip)
}

// Scheme infers a URL scheme from a service port. UDP ports map to udp;
// TCP defaults to http, with https for port 443 or a name containing
// "https".
func Scheme(name string, port int32, protocol corev1.Protocol) string {
	if protocol == corev1.ProtocolUDP {
		return "udp"
	}
	if port == 443 || strings.Contains(strings.ToLower(name), "https") {
		return "https"
	}
	return "http"
}

// portLabel names a port for display, falling back to "default" for
// unnamed ports.
func portLabel(name string) string {
	if name == "" {
		return "default"
	}
	return name
}

// Resolve produces the ordered URL set for one service. endpoints may be
// nil when the service has no Endpoints object; pods is keyed by pod name
// and may be missing entries for pods deleted after their endpoint was
// recorded.
//
// A malformed endpoint address is skipped with a warning and never aborts
// resolution of its siblings. Ports without a usable number are skipped
// silently, so a service may legitimately resolve to an empty result.
func (r *Resolver) Resolve(svc *corev1.Service, endpoints *corev1.Endpoints, pods map[string]*corev1.Pod) *ServiceResult {
	res := &ServiceResult{
		Name:      svc.Name,
		Namespace: r.Namespace,
		Headless:  isHeadless(svc),
		DNSName:   ServiceDNS(svc.Name, r.Namespace),
	}
	if res.Headless {
		res.Type = "Headless"
	} else {
		res.Type = string(svc.Spec.Type)
		if res.Type == "" {
			res.Type = string(corev1.ServiceTypeClusterIP)
		}
	}

	r.resolveServicePorts(svc, res)
	if endpoints != nil {
		r.resolveEndpoints(svc, endpoints, pods, res)
	}
	r.resolveExternal(svc, res)

	urlsResolvedTotal.WithLabelValues(string(KindServiceDNS)).Add(float64(len(res.ServiceURLs)))
	urlsResolvedTotal.WithLabelValues(string(KindClusterIP)).Add(float64(len(res.ClusterIPURLs)))
	urlsResolvedTotal.WithLabelValues(string(KindHeadlessDNS)).Add(float64(len(res.HeadlessURLs)))
	urlsResolvedTotal.WithLabelValues(string(KindExternal)).Add(float64(len(res.ExternalURLs)))

	return res
}

// resolveServicePorts emits the service DNS URLs for every declared port,
// plus ClusterIP URLs when the service has a real ClusterIP.
func (r *Resolver) resolveServicePorts(svc *corev1.Service, res *ServiceResult) {
	for _, port := range svc.Spec.Ports {
		if port.Port <= 0 {
			continue
		}
		scheme := Scheme(port.Name, port.Port, port.Protocol)
		label := portLabel(port.Name)

		res.ServiceURLs = append(res.ServiceURLs, URL{
			Scheme: scheme,
			Host:   res.DNSName,
			Port:   port.Port,
			Label:  label,
			Kind:   KindServiceDNS,
		})
		if !res.Headless {
			res.ClusterIPURLs = append(res.ClusterIPURLs, URL{
				Scheme: scheme,
				Host:   svc.Spec.ClusterIP,
				Port:   port.Port,
				Label:  label,
				Kind:   KindClusterIP,
			})
		}
	}
}

// resolveEndpoints walks the ready addresses of every subset, emitting
// headless DNS records (headless services only, and only when the target
// pod still exists with a known IP) and direct pod IP URLs.
func (r *Resolver) resolveEndpoints(svc *corev1.Service, endpoints *corev1.Endpoints, pods map[string]*corev1.Pod, res *ServiceResult) {
	for _, subset := range endpoints.Subsets {
		for _, addr := range subset.Addresses {
			if utilnet.ParseIPSloppy(addr.IP) == nil {
				addressesSkippedTotal.Inc()
				slog.Warn("skipping endpoint address with unusable IP",
					slog.String("service", svc.Name),
					slog.String("namespace", r.Namespace),
					slog.String("ip", addr.IP),
				)
				continue
			}

			pod := r.lookupPod(addr, pods)
			entry := PodEntry{Name: unknownPodName, IP: addr.IP}
			if pod != nil {
				entry.Name = pod.Name
			}

			for _, port := range subset.Ports {
				if port.Port <= 0 {
					continue
				}
				scheme := Scheme(port.Name, port.Port, port.Protocol)
				label := portLabel(port.Name)

				if res.Headless && pod != nil && pod.Status.PodIP != "" {
					res.HeadlessURLs = append(res.HeadlessURLs, URL{
						Scheme: scheme,
						Host:   EndpointDNS(pod.Status.PodIP, svc.Name, r.Namespace),
						Port:   port.Port,
						Label:  label,
						Kind:   KindHeadlessDNS,
					})
				}
				entry.URLs = append(entry.URLs, URL{
					Scheme: scheme,
					Host:   addr.IP,
					Port:   port.Port,
					Label:  label,
					Kind:   KindPodIP,
				})
			}

			res.Pods = append(res.Pods, entry)
			urlsResolvedTotal.WithLabelValues(string(KindPodIP)).Add(float64(len(entry.URLs)))
		}
	}
}

// resolveExternal emits LoadBalancer ingress URLs over the declared
// service ports.
func (r *Resolver) resolveExternal(svc *corev1.Service, res *ServiceResult) {
	for _, ing := range svc.Status.LoadBalancer.Ingress {
		host := ing.IP
		if host == "" {
			host = ing.Hostname
		}
		if host == "" {
			continue
		}
		for _, port := range svc.Spec.Ports {
			if port.Port <= 0 {
				continue
			}
			res.ExternalURLs = append(res.ExternalURLs, URL{
				Scheme: Scheme(port.Name, port.Port, port.Protocol),
				Host:   host,
				Port:   port.Port,
				Label:  portLabel(port.Name),
				Kind:   KindExternal,
			})
		}
	}
}

// lookupPod resolves an endpoint address to its backing pod, when the
// target reference names a pod that still exists.
func (r *Resolver) lookupPod(addr corev1.EndpointAddress, pods map[string]*corev1.Pod) *corev1.Pod {
	if addr.TargetRef == nil || addr.TargetRef.Kind != "Pod" || addr.TargetRef.Name == "" {
		return nil
	}
	return pods[addr.TargetRef.Name]
}

func isHeadless(svc *corev1.Service) bool {
	return svc.Spec.ClusterIP == "" || svc.Spec.ClusterIP == corev1.ClusterIPNone
}
