//go:build sonic

package codec

import (
	"io"

	"github.com/bytedance/sonic"
)

var jsonUnmarshal = sonic.Unmarshal

func newEncoder(w io.Writer) encoder {
	return sonic.ConfigDefault.NewEncoder(w)
}

func decode(r io.Reader, v any) error {
	return sonic.ConfigDefault.NewDecoder(r).Decode(v)
}
