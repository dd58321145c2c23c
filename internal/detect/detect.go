// Package detect sniffs snapshot input to determine its JSON shape.
package detect

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Shape represents a recognized snapshot layout.
type Shape int

const (
	Unknown  Shape = iota
	Envelope       // GraphQL response: {"data": ...} and/or {"errors": [...]}
	List           // bare JSON array of job states
	Object         // a single job-state object
)

func (s Shape) String() string {
	switch s {
	case Envelope:
		return "envelope"
	case List:
		return "list"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Trim drops a leading UTF-8 byte order mark and leading whitespace.
func Trim(data []byte) []byte {
	return bytes.TrimLeft(bytes.TrimPrefix(data, bom), " \t\r\n")
}

// Sniff examines input to determine its shape. Only the top level is
// inspected; malformed JSON that opens like an array or object is classified
// by its first byte so the decoder reports the syntax error.
func Sniff(data []byte) Shape {
	data = Trim(data)
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		return List
	case '{':
	default:
		return Unknown
	}

	var top map[string]jsoniter.RawMessage
	if err := jsoniter.Unmarshal(data, &top); err != nil {
		return Object
	}
	if isEnvelope(top) {
		return Envelope
	}
	return Object
}

// isEnvelope reports whether the top-level keys look like a GraphQL response.
// A job-state object never carries "data" or "errors".
func isEnvelope(top map[string]jsoniter.RawMessage) bool {
	_, hasData := top["data"]
	_, hasErrors := top["errors"]
	return hasData || hasErrors
}
