package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"QUIET", LevelOff, false},
		{"", LevelNormal, false},
		{"info", LevelNormal, false},
		{" verbose ", LevelVerbose, false},
		{"debug", LevelVerbose, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelsFilterOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INF] shown 2")

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("nope")
	assert.Empty(t, buf.String())
}

func TestNamedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelOff, &buf)
	store := root.Named("store")

	root.SetLevel(LevelVerbose)
	store.Debug("upsert %s", "miso")

	assert.Contains(t, buf.String(), "[DBG] store: upsert miso")
	assert.Equal(t, LevelVerbose, store.GetLevel())
}
