package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAvgScoreRange(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []float64
	}{
		{name: "valid pair", raw: []byte(`[60, 80]`), want: []float64{60, 80}},
		{name: "null column", raw: nil, want: []float64{0, 0}},
		{name: "empty bytes", raw: []byte(``), want: []float64{0, 0}},
		{name: "malformed json", raw: []byte(`[60,`), want: []float64{0, 0}},
		{name: "wrong arity short", raw: []byte(`[42]`), want: []float64{0, 0}},
		{name: "wrong arity long", raw: []byte(`[1, 2, 3]`), want: []float64{0, 0}},
		{name: "non-numeric", raw: []byte(`["a", "b"]`), want: []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAvgScoreRange(tt.raw))
		})
	}
}
