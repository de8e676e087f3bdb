// Package server provides the HTTP server for the orientation consent
// service.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Stage and infrastructure handlers live in internal/server/handlers;
// middleware is in internal/server/middleware
package server
