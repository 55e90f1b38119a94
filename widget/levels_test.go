package widget

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"low", LevelLow},
		{"medium", LevelMedium},
		{"quartile", LevelQuartile},
		{"high", LevelHigh},
		{"  High ", LevelHigh},
		{"MEDIUM", LevelMedium},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "ultra", "h", "3"} {
		_, err := ParseLevel(bad)
		assert.Error(t, err, bad)
	}
}

func TestRecoveryLevelMapping(t *testing.T) {
	assert.Equal(t, qrcode.Low, LevelLow.RecoveryLevel())
	assert.Equal(t, qrcode.Medium, LevelMedium.RecoveryLevel())
	assert.Equal(t, qrcode.High, LevelQuartile.RecoveryLevel())
	assert.Equal(t, qrcode.Highest, LevelHigh.RecoveryLevel())
}
