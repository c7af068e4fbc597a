// Package auth implements the dashboard's session gate.
//
// There is exactly one credential pair. A successful login is recorded as an
// HS256-signed JWT carried in an HttpOnly cookie; the signing key is derived
// from the configured secret with HKDF and handed to the Gate explicitly.
// Logging out clears the cookie and remembers the token's ID until it would
// have expired anyway, so a copied cookie stops working too.
package auth
