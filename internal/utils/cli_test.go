package utils_test

import (
	"testing"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		cmd  string
		args []string
	}{
		{"get", "GET foo", "get", []string{"foo"}},
		{"set with quoted value", `set city "new york"`, "set", []string{"city", "new york"}},
		{"single quotes", `set k 'a "b" c'`, "set", []string{"k", `a "b" c`}},
		{"no args", "report", "report", []string{}},
		{"escaped space", `set k a\ b`, "set", []string{"k", "a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := utils.SplitCommandLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestSplitCommandLine_Errors(t *testing.T) {
	_, _, err := utils.SplitCommandLine(`set k "unterminated`)
	assert.Error(t, err)

	_, _, err = utils.SplitCommandLine("   ")
	assert.Error(t, err)
}

func TestParseInt64Arg(t *testing.T) {
	n, err := utils.ParseInt64Arg([]string{"k", "5"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = utils.ParseInt64Arg([]string{"k"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = utils.ParseInt64Arg([]string{"k", "five"}, 1, 1)
	assert.Error(t, err)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("KT_TEST_HOST", "kt.example")
	assert.Equal(t, "kt.example", utils.GetEnvOrDefault("KT_TEST_HOST", "localhost"))
	assert.Equal(t, "localhost", utils.GetEnvOrDefault("KT_TEST_UNSET", "localhost"))

	t.Setenv("KT_TEST_PORT", "11978")
	assert.Equal(t, 11978, utils.GetEnvIntOrDefault("KT_TEST_PORT", 1978))

	t.Setenv("KT_TEST_PORT", "nope")
	assert.Equal(t, 1978, utils.GetEnvIntOrDefault("KT_TEST_PORT", 1978))
}
