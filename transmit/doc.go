// Package transmit defines the transmission interface the drain side
// of the pipeline hands completed log lines to, along with a couple of
// ready-made implementations.
//
// A Transmitter reports success or failure for one line and nothing
// else; retry policy belongs entirely to the caller. Writer adapts any
// io.Writer and WebSocket pushes each line as one binary message over
// a gorilla/websocket connection, which is handy for tailing a device
// remotely.
package transmit
