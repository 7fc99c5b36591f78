package feeders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFeeder_Feed(t *testing.T) {
	path := writeTempFile(t, "tour.json", `{"delay_scale": 0.5, "lessons": ["cloning"], "nested": {"verbose": true}}`)

	var cfg testConfig
	require.NoError(t, NewJSONFeeder(path).Feed(&cfg))

	assert.InDelta(t, 0.5, cfg.Scale, 1e-9)
	assert.Equal(t, []string{"cloning"}, cfg.Lessons)
	assert.True(t, cfg.Nested.Verbose)
	assert.Empty(t, cfg.Level)
}
