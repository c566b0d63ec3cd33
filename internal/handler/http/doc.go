// Package http implements the dashboard HTTP API.
//
// It wires the chi router, the request middleware (panic recovery, CORS,
// trace ids, access logging and Prometheus request metrics) and the
// handlers: the dashboard summary, the per-driver notification stream
// served as Server-Sent Events, the build version and the metrics endpoint.
package http
