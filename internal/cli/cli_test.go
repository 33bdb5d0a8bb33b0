package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCanonCommand(t *testing.T) {
	out, err := execute(t, "canon", "1.7775 ± 0.6", "2000 ± 0.3")
	require.NoError(t, err)
	assert.Equal(t, "1.8 ± 0.6\n2000.0 ± 0.3\n", out)
}

func TestRoundCommand(t *testing.T) {
	out, err := execute(t, "round", "-d", "8", "2000.0 ± 0.3")
	require.NoError(t, err)
	assert.Equal(t, "2000.0 ± 0.3\n", out)

	_, err = execute(t, "round", "-d", "0", "2000.0 ± 0.3")
	assert.Error(t, err)
}

func TestBinaryCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "1.8 ± 0.6", "2000.0 ± 0.3"}, "2000.0 ± 0.7\n"},
		{[]string{"sub", "5.00 ± 0.3", "3.00 ± 0.4"}, "2.0 ± 0.5\n"},
		{[]string{"mul", "2.0 ± 0.1", "3.0 ± 0.2"}, "6.0 ± 0.5\n"},
		{[]string{"div", "6.0 ± 0.5", "2.0 ± 0.1"}, "3.0 ± 0.3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBinaryCommandZeroOperand(t *testing.T) {
	_, err := execute(t, "div", "6.0 ± 0.5", "0 ± 0.1")
	assert.Error(t, err)
}

func TestSumCommand(t *testing.T) {
	out, err := execute(t, "sum", "10.0 ± 3", "20.0 ± 4")
	require.NoError(t, err)
	assert.Equal(t, "30 ± 5\n", out)
}

func TestProductCommand(t *testing.T) {
	out, err := execute(t, "product", "2.0 ± 0.1", "3.0 ± 0.2")
	require.NoError(t, err)
	assert.Equal(t, "6.0 ± 0.5\n", out)
}

func TestAvgCommand(t *testing.T) {
	out, err := execute(t, "avg", "10", "12", "14")
	require.NoError(t, err)
	assert.Equal(t, "12 ± 2\n", out)

	_, err = execute(t, "avg", "10", "notanumber")
	assert.Error(t, err)
}

func TestMalformedOperand(t *testing.T) {
	_, err := execute(t, "canon", "1.8 plus 0.6")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "malformed"))
}
