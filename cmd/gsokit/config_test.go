// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsokit/matrix"
)

func TestLoadConfigKeepsUnsetKeys(t *testing.T) {
	path := writeFile(t, "c.yaml", "epsilon: 1.0e-10\n")
	cfg, err := loadConfig(path, defaultConfig())
	require.NoError(t, err)
	require.Equal(t, 1e-10, cfg.Epsilon)
	require.Equal(t, matrix.DefaultMaxPasses, cfg.MaxPasses)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRejects(t *testing.T) {
	for name, body := range map[string]string{
		"passes": "max_passes: 0\n",
		"level":  "log_level: loud\n",
		"syntax": "epsilon: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, "c.yaml", body), defaultConfig())
			require.Error(t, err)
		})
	}
	_, err := loadConfig("/nonexistent/gsokit.yaml", defaultConfig())
	require.ErrorContains(t, err, "failed to read config")
}

func TestEpsilonValue(t *testing.T) {
	var e epsilonValue
	require.NoError(t, e.Set("0x1p-52"))
	require.Equal(t, matrix.DefaultEpsilon, float64(e))
	require.Equal(t, "2.220446049250313e-16", e.String())
	require.Equal(t, "float", e.Type())

	require.Error(t, e.Set("abc"))
	require.ErrorIs(t, e.Set("0"), errBadEpsilon)
	require.ErrorIs(t, e.Set("+Inf"), errBadEpsilon)
}
