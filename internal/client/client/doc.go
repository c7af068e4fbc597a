// Package client talks to the studentboard dashboard over HTTP.
//
// The Client interface is the contract the terminal UI depends on; HTTPClient
// implements it with a cookie jar so the session cookie issued by POST /login
// is replayed on every later request, exactly as a browser would.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable, a missing or expired session maps to
// ErrUnauthorized, rejected credentials to ErrLoginFailed and a rejected page
// number to ErrInvalidPage. Match them with errors.Is.
package client
