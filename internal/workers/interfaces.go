// Package workers runs the application's periodic background jobs.
//
// A Worker blocks in Run until its context is cancelled; Workers starts a
// set of them and waits for all to return.
package workers

import "context"

// Worker is a background job bound to the lifetime of ctx.
type Worker interface {
	Run(ctx context.Context)
}
