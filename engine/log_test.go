package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWorld(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := NewContext()
	a := ctx.World.Spawn("ship")
	ctx.World.Attach(a, &plain{})
	b := ctx.World.Spawn("rock")
	ctx.World.Kill(b)

	LogWorld(&logger, ctx.World, zerolog.InfoLevel)

	var out struct {
		Total    int `json:"total_entities"`
		Entities []struct {
			Name       string   `json:"name"`
			Components []string `json:"components"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Entities, 1)
	assert.Equal(t, "ship", out.Entities[0].Name)
	assert.Equal(t, []string{"engine.plain"}, out.Entities[0].Components)
}
