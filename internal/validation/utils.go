// Package validation binds and validates request payloads.
//
// It uses go-playground/validator for rules declared in struct tags and
// turns validation failures into field errors the client can act on.
package validation
