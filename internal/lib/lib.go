// Package lib holds supporting code that does not fit the handler,
// service or repository layers: the report digest job (Redis/Asynq),
// the email client (Resend) and small output helpers.
package lib
