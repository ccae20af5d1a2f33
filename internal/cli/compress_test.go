package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		name       string
		flagSet    bool
		flagRate   float64
		configRate float64
		want       float64
	}{
		{"unset falls back to config", false, 0, 0.5, 0.5},
		{"explicit rate wins", true, 0.8, 0.5, 0.8},
		{"explicit zero is zero, not the config rate", true, 0, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveRate(tt.flagSet, tt.flagRate, tt.configRate))
		})
	}
}

func TestCompressCmd_ExplicitZeroRateIsDetected(t *testing.T) {
	cmd := NewCompressCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--rate", "0"}))
	assert.True(t, cmd.Flags().Changed("rate"))

	cmd = NewCompressCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--model", "gpt-4"}))
	assert.False(t, cmd.Flags().Changed("rate"))
}
