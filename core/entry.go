package core

// EntryMaxSize is the maximum length of one rendered log line in
// bytes, including the trailing CRLF terminator.
const EntryMaxSize = 256

// Entry is one rendered log line stored in a ring buffer slot. The
// backing array is part of the struct, so a ring of entries is a
// single contiguous allocation with no per-line indirection.
type Entry struct {
	data   [EntryMaxSize]byte
	length int
}

// Set copies p into the entry, silently truncating at EntryMaxSize.
// Formatting is expected to already respect the limit; the truncation
// here only caps what an out-of-contract caller can store.
func (e *Entry) Set(p []byte) {
	n := len(p)
	if n > EntryMaxSize {
		n = EntryMaxSize
	}
	copy(e.data[:n], p[:n])
	e.length = n
}

// Bytes returns the stored line. The returned slice aliases the slot;
// it is only valid until the slot is overwritten by a later push.
func (e *Entry) Bytes() []byte {
	return e.data[:e.length]
}

// Len returns the stored line length in bytes.
func (e *Entry) Len() int {
	return e.length
}
