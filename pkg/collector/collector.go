// Package collector fetches the per-namespace snapshot of Services,
// Endpoints and Pods this tool resolves URLs from. All three list calls are
// independent reads, so they run in parallel and join into an immutable
// Snapshot consumed read-only by the resolver.
package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Snapshot is the read-only view of one namespace at collection time.
type Snapshot struct {
	Namespace string

	// Services in API list order.
	Services []corev1.Service

	// Endpoints keyed by service name.
	Endpoints map[string]*corev1.Endpoints

	// Pods keyed by pod name.
	Pods map[string]*corev1.Pod
}

// Collector lists namespace resources through a Kubernetes client.
type Collector struct {
	ClientSet kubernetes.Interface
}

// New creates a Collector backed by the given client.
func New(clientset kubernetes.Interface) *Collector {
	return &Collector{ClientSet: clientset}
}

// Collect fetches Services, Endpoints and Pods for the namespace in
// parallel and returns the joined snapshot. Any single list failure aborts
// the collection; errors are classified into the authentication, permission
// and connection sentinels.
func (c *Collector) Collect(ctx context.Context, namespace string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		collectDuration.Observe(time.Since(start).Seconds())
	}()

	snap := &Snapshot{
		Namespace: namespace,
		Endpoints: make(map[string]*corev1.Endpoints),
		Pods:      make(map[string]*corev1.Pod),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		services, err := c.ClientSet.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			listTotal.WithLabelValues("services", "error").Inc()
			return classifyListError("services", namespace, err)
		}
		listTotal.WithLabelValues("services", "success").Inc()
		mu.Lock()
		snap.Services = services.Items
		mu.Unlock()
		slog.Debug("listed services", slog.String("namespace", namespace), slog.Int("count", len(services.Items)))
		return nil
	})

	g.Go(func() error {
		endpoints, err := c.ClientSet.CoreV1().Endpoints(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			listTotal.WithLabelValues("endpoints", "error").Inc()
			return classifyListError("endpoints", namespace, err)
		}
		listTotal.WithLabelValues("endpoints", "success").Inc()
		mu.Lock()
		for i := range endpoints.Items {
			ep := &endpoints.Items[i]
			snap.Endpoints[ep.Name] = ep
		}
		mu.Unlock()
		slog.Debug("listed endpoints", slog.String("namespace", namespace), slog.Int("count", len(endpoints.Items)))
		return nil
	})

	g.Go(func() error {
		pods, err := c.ClientSet.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			listTotal.WithLabelValues("pods", "error").Inc()
			return classifyListError("pods", namespace, err)
		}
		listTotal.WithLabelValues("pods", "success").Inc()
		mu.Lock()
		for i := range pods.Items {
			pod := &pods.Items[i]
			snap.Pods[pod.Name] = pod
		}
		mu.Unlock()
		slog.Debug("listed pods", slog.String("namespace", namespace), slog.Int("count", len(pods.Items)))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}
