// Package api provides the HTTP handlers for the service: token issuance,
// user and post CRUD, and the informational root page. Handlers translate
// store and auth errors into the documented HTTP status codes and never leak
// raw driver errors to clients.
package api
