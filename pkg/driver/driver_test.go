package driver_test

import (
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandRun(t *testing.T) {
	cmd, err := driver.ParseCommand("r B3 wpass")
	require.NoError(t, err)

	run, ok := cmd.(driver.Run)
	require.True(t, ok)
	require.Len(t, run.Moves, 2)
	assert.True(t, run.Moves[0].Equals(board.NewMove(board.Black, 2)))
	assert.True(t, run.Moves[1].Equals(board.NewPass(board.White)))
}

func TestParseCommandRunEmptyPrefix(t *testing.T) {
	cmd, err := driver.ParseCommand("run")
	require.NoError(t, err)
	run, ok := cmd.(driver.Run)
	require.True(t, ok)
	assert.Empty(t, run.Moves)
}

func TestParseCommandHalt(t *testing.T) {
	for _, line := range []string{"h", "halt", "HALT"} {
		cmd, err := driver.ParseCommand(line)
		require.NoError(t, err)
		assert.IsType(t, driver.Halt{}, cmd)
	}
}

func TestParseCommandInspect(t *testing.T) {
	for _, line := range []string{"i", "inspect"} {
		cmd, err := driver.ParseCommand(line)
		require.NoError(t, err)
		assert.IsType(t, driver.Inspect{}, cmd)
	}
}

func TestParseCommandInvalid(t *testing.T) {
	for _, line := range []string{"", "r xyz", "bogus"} {
		_, err := driver.ParseCommand(line)
		assert.Error(t, err, line)
	}
}

func TestStartupOptionsWindowWithoutGuess(t *testing.T) {
	opt := driver.StartupOptions{Alpha: -4, Beta: 4}
	alpha, beta := opt.Window()
	assert.Equal(t, -4, alpha)
	assert.Equal(t, 4, beta)
}

func TestStartupOptionsWindowWithGuessOverrides(t *testing.T) {
	opt, err := driver.ParseStartupOptions([]string{"alpha=-9", "beta=9", "guess=2"})
	require.NoError(t, err)

	alpha, beta := opt.Window()
	assert.Equal(t, 1, alpha)
	assert.Equal(t, 3, beta)
}

func TestStartupOptionsValidate(t *testing.T) {
	assert.NoError(t, driver.StartupOptions{Alpha: -4, Beta: 4}.Validate())
	assert.Error(t, driver.StartupOptions{Alpha: 4, Beta: -4}.Validate())
}

func TestParseStartupOptionsPrefix(t *testing.T) {
	opt, err := driver.ParseStartupOptions([]string{"prefix=B3,wpass"})
	require.NoError(t, err)
	require.Len(t, opt.Prefix, 2)
	assert.True(t, opt.Prefix[0].Equals(board.NewMove(board.Black, 2)))
	assert.True(t, opt.Prefix[1].Equals(board.NewPass(board.White)))
}

func TestParseStartupOptionsInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"noequals"},
		{"alpha=notanumber"},
		{"beta=notanumber"},
		{"guess=notanumber"},
		{"prefix=zz"},
		{"bogus=1"},
	} {
		_, err := driver.ParseStartupOptions(args)
		assert.Error(t, err, args)
	}
}
