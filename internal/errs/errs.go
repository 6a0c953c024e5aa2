// Package errs defines the error shape the HTTP API returns.
//
// Every failure leaving the API is an *HTTPError, so clients always get
// the same JSON body: a machine code, a message, the status and optional
// per-field errors.
package errs
