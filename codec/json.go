package codec

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/nodec"
)

// JSON returns a Codec backed by goccy/go-json.
func JSON() Codec { return jsonCodec{} }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(n nodec.Node) ([]byte, error) {
	b, err := gojson.Marshal(n.Interface())
	if err != nil {
		return nil, fmt.Errorf("codec json: %w", err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte) (nodec.Node, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nodec.Node{}, fmt.Errorf("codec json: %w", err)
	}
	return nodec.FromAny(v), nil
}
