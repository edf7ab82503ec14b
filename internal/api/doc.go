// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between the renderer
// client and the internal services, translating HTTP concerns into
// dictionary, sentence, and session operations.
package api
