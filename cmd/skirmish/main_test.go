package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
groups:
  - name: Alliance
    members:
      - {name: Aldric, class: warrior, level: 5, weapon: Iron Sword, armor: random}
      - {name: Thalia, class: mage, level: 5}
  - name: Horde
    members:
      - {name: Sylva, class: archer, level: 5, weapon: Long Bow}
`

func writeRunFiles(t *testing.T, extra string) {
	t.Helper()
	dir := t.TempDir()
	scenario := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte(testScenario), 0o600))

	cfg := "log_level: error\nrounds: 25\nseed: 99\nscenario_path: " + scenario + "\n" + extra
	cfgPath := filepath.Join(dir, "skirmish.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	t.Setenv("SKIRMISH_CONFIG", cfgPath)
}

func TestRun_SingleBattle(t *testing.T) {
	writeRunFiles(t, "strategy: highest_damage\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out))

	assert.Contains(t, out.String(), "Strategy highest_damage, 25 rounds")
	assert.Contains(t, out.String(), "Alliance")
	assert.Contains(t, out.String(), "Horde")
}

func TestRun_SameSeedSameSummary(t *testing.T) {
	writeRunFiles(t, "")

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), &first))
	require.NoError(t, run(context.Background(), &second))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_CompareStrategies(t *testing.T) {
	writeRunFiles(t, "compare_strategies: true\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out))

	for _, name := range []string{"lowest_hp", "highest_hp", "lowest_damage", "highest_damage"} {
		assert.Contains(t, out.String(), "Strategy "+name+",")
	}
}

func TestRun_MissingScenario(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "skirmish.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scenario_path: "+filepath.Join(dir, "nope.yaml")+"\n"), 0o600))
	t.Setenv("SKIRMISH_CONFIG", cfgPath)

	err := run(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading scenario")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("bogus").String())
}
