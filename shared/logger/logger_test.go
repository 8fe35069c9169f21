package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter("production", &buf)

	l.Info().Str("user_id", "u1").Msg("logged in")
	l.Debug().Msg("dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "logged in", line["message"])
	assert.Equal(t, "u1", line["user_id"])
	assert.Contains(t, line, "time")
}

func TestNew_DevelopmentIsVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter("development", &buf)

	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
