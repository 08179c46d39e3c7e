// Package runner executes generated solution files.
//
// [Runner.Run] spawns the configured command with the file appended, inherits
// the caller's output streams and maps the outcome to an exit code:
//
//   - the child's own exit code when it exits normally,
//   - [ExitTimeout] (124) when it is killed for exceeding the timeout,
//   - 1 when it is terminated by a signal or cannot be started.
//
// [Runner.Watch] runs the file once and then again after every change to
// it. Bursts of file system events are debounced, and a change that arrives
// while a run is in progress queues exactly one more run.
//
// [Resolve] turns a problem URL, slug or path into the file to run.
package runner
