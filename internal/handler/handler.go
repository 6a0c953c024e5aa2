// Package handler is the HTTP layer behind the router.
//
// It binds and validates requests with the validation package, calls the
// service layer and writes JSON responses. Errors are returned to the
// global error handler, which shapes them into errs.HTTPError bodies.
package handler
