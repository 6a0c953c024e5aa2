// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input from handlers or the CLI, supplies the connection handle to the
// repositories, logs what changed and turns "not found" and "nothing to
// update" outcomes into HTTP errors.
package service
