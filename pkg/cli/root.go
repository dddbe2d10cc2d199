package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/svcurls/svcurls/pkg/collector"
	"github.com/svcurls/svcurls/pkg/filter"
	"github.com/svcurls/svcurls/pkg/k8s/client"
	"github.com/svcurls/svcurls/pkg/presenter"
	"github.com/svcurls/svcurls/pkg/resolver"
	"github.com/svcurls/svcurls/pkg/serializer"
	"github.com/svcurls/svcurls/pkg/version"
)

// Report is the serializable shape of one run's output for the json and
// yaml formats.
type Report struct {
	Namespace string                    `json:"namespace" yaml:"namespace"`
	Filter    string                    `json:"filter,omitempty" yaml:"filter,omitempty"`
	Services  []*resolver.ServiceResult `json:"services" yaml:"services"`
}

// Root builds the svcurls command.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  "svcurls",
		EnableShellCompletion: true,
		Version:               version.Version,
		Usage:                 "List reachable URLs for services in a Kubernetes namespace",
		Description: `Queries a cluster for Services and their pod endpoints in one namespace
and prints every reachable access point:

  - Service DNS URLs (<service>.<namespace>.svc.cluster.local)
  - ClusterIP URLs
  - Headless DNS records (dashed pod IP form)
  - Direct pod IP URLs
  - LoadBalancer ingress URLs

# Examples

List everything in the default namespace:
  svcurls

List services matching a name pattern in a namespace:
  svcurls --namespace prod --filter '^api-'

Use a specific kubeconfig and emit JSON:
  svcurls --kubeconfig ~/.kube/staging --format json

The run is read-only: only list verbs are used, nothing is written to the
cluster.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Value:   "default",
				Usage:   "Namespace to query",
			},
			&cli.StringFlag{
				Name:    "kubeconfig",
				Aliases: []string{"k"},
				Usage:   "Path to kubeconfig file (default: KUBECONFIG, then ~/.kube/config, then in-cluster)",
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Regular expression applied to service names (unanchored, case-sensitive)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatTable),
				Usage:   "Output format (table, json, yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Deadline for the whole run (0 means no deadline)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Action: run,
	}
}

// run orchestrates one invocation: validate flags, build the client, fetch
// the namespace snapshot, resolve and print. Flag validation happens before
// any network call.
func run(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	f, err := filter.New(cmd.String("filter"))
	if err != nil {
		return err
	}

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	clientset, _, err := client.BuildKubeClient(cmd.String("kubeconfig"))
	if err != nil {
		return err
	}

	namespace := cmd.String("namespace")
	snap, err := collector.New(clientset).Collect(ctx, namespace)
	if err != nil {
		return err
	}

	selected := f.Select(snap.Services)
	slog.Debug("selected services",
		slog.String("namespace", namespace),
		slog.Int("matched", len(selected)),
		slog.Int("total", len(snap.Services)),
	)

	res := resolver.New(namespace)
	results := make([]*resolver.ServiceResult, 0, len(selected))
	for i := range selected {
		svc := &selected[i]
		results = append(results, res.Resolve(svc, snap.Endpoints[svc.Name], snap.Pods))
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if outFormat == serializer.FormatTable {
		return ser.Serialize(presenter.Render(namespace, f.Pattern(), results))
	}
	return ser.Serialize(Report{Namespace: namespace, Filter: f.Pattern(), Services: results})
}

// setupLogging installs the default slog logger. Every record carries a
// run id so lines from one invocation can be correlated in aggregated logs.
func setupLogging(debug, logJSON bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(lvl)); err == nil {
			level = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler).With(slog.String("run_id", uuid.NewString())))
	slog.Debug("logging configured", slog.String("level", level.String()), slog.Bool("json", logJSON), slog.String("started", time.Now().UTC().Format(time.RFC3339)))
}
