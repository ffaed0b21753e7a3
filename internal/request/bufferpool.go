package request

import "sync"

// ReadChunkSize bounds every single read from the connection.
const ReadChunkSize = 1024

// Read chunks are only needed while a request is being framed, so they are
// shared between connections through a pool.
var chunkPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, ReadChunkSize)
		return &buf
	},
}

func getChunk() *[]byte {
	return chunkPool.Get().(*[]byte)
}

// putChunk returns a chunk to the pool
func putChunk(buf *[]byte) {
	if cap(*buf) != ReadChunkSize {
		// non-standard size, let GC handle it
		return
	}
	*buf = (*buf)[:ReadChunkSize]
	chunkPool.Put(buf)
}
