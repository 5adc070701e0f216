package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reoring/nodec"
)

// YAML returns a Codec backed by gopkg.in/yaml.v3. yaml decodes whole
// numbers as int, which the nodec bridge folds into the float64 carrier.
func YAML() Codec { return yamlCodec{} }

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(n nodec.Node) ([]byte, error) {
	b, err := yaml.Marshal(n.Interface())
	if err != nil {
		return nil, fmt.Errorf("codec yaml: %w", err)
	}
	return b, nil
}

func (yamlCodec) Unmarshal(data []byte) (nodec.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nodec.Node{}, fmt.Errorf("codec yaml: %w", err)
	}
	return nodec.FromAny(v), nil
}
