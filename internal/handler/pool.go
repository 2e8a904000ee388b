package handler

import (
	"bytes"
	"sync"
)

// Rendered pages are buffered so a template error can still become a 500.
// Buffers that grew past maxPooledBuffer, such as a long diary, are dropped.
const (
	initialBuffer   = 16 << 10
	maxPooledBuffer = 256 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBuffer))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
