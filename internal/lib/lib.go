// Package lib holds supporting modules that sit outside the request path.
//
// Today that is the job package: category change events published to
// Redis through Asynq and consumed by an in-process worker.
package lib
