// Package services implements the driving port interfaces.
// Services contain the core business logic: fetching reference text,
// the simplification control loop, generative helpers, and the
// explain orchestration that ties them together.
//
// Services are pure Go with no external I/O of their own; everything
// reaches the outside world through driven ports.
package services
