// Package cli implements the command-line interface for svcurls.
//
// # Overview
//
// svcurls is a single-purpose, read-only tool: it lists the Services of one
// Kubernetes namespace together with every network address a client could
// use to reach them. One invocation performs one snapshot of the namespace
// (Services, Endpoints, Pods), resolves the URL set per service and prints
// it. There is no watch mode, no caching and no write access to the cluster.
//
// # Usage
//
//	svcurls [--namespace NS] [--kubeconfig PATH] [--filter REGEX]
//	        [--format table|json|yaml] [--output FILE] [--timeout DUR]
//
// # Flags
//
//	--namespace, -n   Namespace to query (default: "default")
//	--kubeconfig, -k  Kubeconfig path (default: standard discovery)
//	--filter, -f      Regex applied to service names (unanchored)
//	--format, -t      Output format: table, json, yaml (default: table)
//	--output, -o      Output file path (default: stdout)
//	--timeout         Deadline for the whole run (default: none)
//	--debug           Enable debug logging
//	--log-json        Output logs in JSON format
//
// # Environment Variables
//
//	KUBECONFIG   Path to kubeconfig file (standard discovery)
//	LOG_LEVEL    Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success (including zero matched services)
//	1  General error (auth, connection, permission, invalid pattern)
//	2  Context canceled or timeout
package cli
