// Package formatter renders log events into the fixed wire format
// consumed by the transmission side:
//
//	[<ticks>] [<LEVEL>][<file>:<line>]: <message>\r\n
//
// The timestamp segment is omitted when disabled. Level tags are
// fixed-width so columns align, the file is reduced to its final path
// component, and the rendered line is truncated so that the CRLF
// terminator always fits within core.EntryMaxSize bytes.
package formatter
