// Package codec provides byte-level interchange codecs over nodec trees.
// The core keeps no wire format of its own; these codecs delegate the byte
// work to the native JSON/YAML facilities and cross the boundary through the
// nodec bridge.
package codec

import "github.com/reoring/nodec"

// Codec converts between a serialized byte form and a Node tree.
type Codec interface {
	Marshal(n nodec.Node) ([]byte, error)
	Unmarshal(data []byte) (nodec.Node, error)
	Name() string
}
