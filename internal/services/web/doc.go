// Package web hosts the browser-facing landing service: it loads the pool,
// guess and user counters from the backend, renders the landing page and
// relays pool creation requests.
package web
