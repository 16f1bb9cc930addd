package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type header struct {
	DType string  `json:"dtype"`
	Rows  int     `json:"rows"`
	Min   float64 `json:"min"`
}

func TestByName(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		got, err := ByName(c.Name())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ByName("msgpack")
	assert.Error(t, err)
}

func TestCodecsInteroperate(t *testing.T) {
	in := header{DType: "float32", Rows: 100, Min: -1.5}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			t.Run(enc.Name()+"->"+dec.Name(), func(t *testing.T) {
				b, err := enc.Marshal(in)
				require.NoError(t, err)

				var out header
				require.NoError(t, dec.Unmarshal(b, &out))
				assert.Equal(t, in, out)
			})
		}
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "go-json", Default.Name())
}
