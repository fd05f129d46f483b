// Package http implements the REST transport of the account and solution
// service.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// authority checks, request tracing, access logging and metrics are handled
// here before requests are delegated to the service layer. Failures are
// rendered as "application/problem+json" bodies together with
// X-<app>-error/X-<app>-params alert headers.
package http
