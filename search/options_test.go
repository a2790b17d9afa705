package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	tests := []struct {
		name   string
		modify func(o *Options)
	}{
		{"connectivity", func(o *Options) { o.Connectivity = 6 }},
		{"min region size", func(o *Options) { o.MinRegionSize = 0 }},
		{"spread threshold", func(o *Options) { o.ResourceSpreadThreshold = 0 }},
		{"search range", func(o *Options) { o.TownHallSearchRange = -1 }},
		{"clearance", func(o *Options) { o.GeyserClearance = -1 }},
		{"owned radius", func(o *Options) { o.OwnedExpansionRadius = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			assert.ErrorIs(t, o.Validate(), ErrInvalidOptions)
		})
	}
}
