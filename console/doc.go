// Package console provides the immediate-mode debug echo sink.
//
// Unlike the buffered pipeline, a console Sink renders and writes each
// event synchronously, with optional ANSI color per severity. It is a
// best-effort trace channel: write errors are swallowed, nothing is
// retried, and the ring buffer is never involved.
package console
