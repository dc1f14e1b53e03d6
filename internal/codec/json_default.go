//go:build !sonic

package codec

import (
	"io"

	"github.com/goccy/go-json"
)

var jsonUnmarshal = json.Unmarshal

func newEncoder(w io.Writer) encoder {
	return json.NewEncoder(w)
}

func decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
