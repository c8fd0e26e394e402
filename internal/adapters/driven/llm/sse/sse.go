// Package sse reads single lines of a server-sent events stream.
package sse

import "bytes"

var dataPrefix = []byte("data:")

// Data returns the payload of a "data:" line.
// Comments, event names, ids and retry hints report ok=false.
func Data(line []byte) (payload []byte, ok bool) {
	if !bytes.HasPrefix(line, dataPrefix) {
		return nil, false
	}
	payload = line[len(dataPrefix):]
	// A single leading space after the colon is part of the field syntax.
	if len(payload) > 0 && payload[0] == ' ' {
		payload = payload[1:]
	}
	return payload, true
}
