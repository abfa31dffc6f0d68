// Package server exposes the runner over HTTP: the streaming chat endpoint
// (POST /), a health check (GET /health) and a request-echo debug endpoint
// (POST /debug), with permissive CORS for local front-end development.
//
// Responses are streamed through the negotiated protocol encoder and flushed
// after every event; no buffering layer sits between the runner and the
// client.
package server
