package codec_test

import (
	"strings"
	"testing"

	nodec "github.com/reoring/nodec"
	"github.com/reoring/nodec/codec"
)

func TestJSON_RoundTrip(t *testing.T) {
	c := codec.JSON()
	in := []byte(`{"a":1,"b":[true,null,"x"]}`)

	n, err := c.Unmarshal(in)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	a, ok := n.Get("a")
	if !ok || !a.Equal(nodec.Number(1)) {
		t.Fatalf("field a = %v ok=%v", a, ok)
	}
	b, _ := n.Get("b")
	if b.Len() != 3 {
		t.Fatalf("field b len = %d", b.Len())
	}
	if e, _ := b.Index(1); !e.IsNull() {
		t.Fatalf("b[1] should be null")
	}

	out, err := c.Marshal(n)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	n2, err := c.Unmarshal(out)
	if err != nil {
		t.Fatalf("re-unmarshal err: %v", err)
	}
	if !n.Equal(n2) {
		t.Fatalf("round trip mismatch:\n n=%#v\nn2=%#v", n, n2)
	}
}

func TestJSON_UnmarshalError(t *testing.T) {
	_, err := codec.JSON().Unmarshal([]byte(`{"a":`))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "codec json") {
		t.Fatalf("error should name the codec, got %v", err)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	c := codec.YAML()
	in := []byte("a: 1\nb:\n  - true\n  - null\n  - x\n")

	n, err := c.Unmarshal(in)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	// yaml decodes whole numbers as int; the bridge folds them into the
	// float64 carrier.
	a, ok := n.Get("a")
	if !ok || !a.Equal(nodec.Number(1)) {
		t.Fatalf("field a = %v ok=%v", a, ok)
	}
	b, _ := n.Get("b")
	if e, _ := b.Index(2); !e.Equal(nodec.String("x")) {
		t.Fatalf("b[2] = %v", e)
	}

	out, err := c.Marshal(n)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	n2, err := c.Unmarshal(out)
	if err != nil {
		t.Fatalf("re-unmarshal err: %v", err)
	}
	if !n.Equal(n2) {
		t.Fatalf("round trip mismatch")
	}
}

func TestYAML_UnmarshalError(t *testing.T) {
	_, err := codec.YAML().Unmarshal([]byte("a: [1,\n"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "codec yaml") {
		t.Fatalf("error should name the codec, got %v", err)
	}
}

func TestCodec_Names(t *testing.T) {
	if codec.JSON().Name() != "json" || codec.YAML().Name() != "yaml" {
		t.Fatalf("unexpected codec names %q %q", codec.JSON().Name(), codec.YAML().Name())
	}
}
