// Package server runs the dashboard HTTP server.
//
// It owns the listener lifecycle: serving until the run context is
// cancelled, then shutting down gracefully. Long-lived notification streams
// are cancelled as soon as shutdown begins so they do not hold it open.
package server
