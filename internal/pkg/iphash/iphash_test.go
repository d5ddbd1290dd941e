//go:build unit

package iphash_test

import (
	"testing"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/iphash"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, iphash.Hash("203.0.113.7"), iphash.Hash("203.0.113.7"))
	})

	t.Run("distinct inputs yield distinct digests", func(t *testing.T) {
		assert.NotEqual(t, iphash.Hash("203.0.113.7"), iphash.Hash("203.0.113.8"))
	})

	t.Run("fixed-length hex digest", func(t *testing.T) {
		digest := iphash.Hash("203.0.113.7")
		assert.Len(t, digest, 64)
		assert.Regexp(t, "^[0-9a-f]+$", digest)
	})
}

func TestFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		wantIP string
	}{
		{name: "single address", header: "203.0.113.7", wantIP: "203.0.113.7"},
		{name: "first hop of forwarded chain", header: "203.0.113.7, 10.0.0.1, 10.0.0.2", wantIP: "203.0.113.7"},
		{name: "surrounding whitespace trimmed", header: "  203.0.113.7  ,10.0.0.1", wantIP: "203.0.113.7"},
		{name: "missing header falls back to unknown", header: "", wantIP: "unknown"},
		{name: "blank first hop falls back to unknown", header: " , 10.0.0.1", wantIP: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, iphash.Hash(tt.wantIP), iphash.FromHeader(tt.header))
		})
	}
}
