package api

import (
	"bytes"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// The authority has answered with several payload shapes over time:
// a single object, or an array whose first element is the object, with
// the holiday name under "name" or "title". decodeHoliday probes the
// shapes in a fixed order so the fallback behavior stays auditable:
//
//  1. an array payload is narrowed to its first element
//  2. "name" is preferred over "title"
//  3. "type" is optional and never fails the decode
func decodeHoliday(body []byte) (name, typ string, err error) {
	payload := bytes.TrimSpace(body)
	if len(payload) == 0 {
		return "", "", errors.New("empty payload")
	}

	var prefix []string
	if payload[0] == '[' {
		prefix = []string{"[0]"}
	}

	for _, key := range []string{"name", "title"} {
		value, getErr := jsonparser.GetString(payload, append(prefix[:len(prefix):len(prefix)], key)...)
		if getErr == nil && value != "" {
			name = value
			break
		}
	}
	if name == "" {
		return "", "", errors.New("no holiday name in the payload")
	}

	typ, _ = jsonparser.GetString(payload, append(prefix[:len(prefix):len(prefix)], "type")...)
	return name, typ, nil
}
