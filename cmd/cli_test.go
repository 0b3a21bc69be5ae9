package cmd_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"parcelrouting/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	tests := map[string]struct {
		weight string
		value  string
		want   []string
	}{
		"mail": {
			weight: "0.5", value: "10",
			want: []string{"weight 0.5 -> Mail (default)", "value 10 -> - (none)", "departments: Mail"},
		},
		"regular at upper bound": {
			weight: "10", value: "1000",
			want: []string{"weight 10 -> Regular (default)", "requires insurance: false"},
		},
		"heavy and insured": {
			weight: "12", value: "1500",
			want: []string{"requires insurance: true", "departments: Heavy, Insurance"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := runCLI(t, "classify", "--weight", tc.weight, "--value", tc.value)

			require.NoError(t, err)
			for _, line := range tc.want {
				assert.Contains(t, out, line)
			}
		})
	}
}

func TestClassifyCommand_Errors(t *testing.T) {
	tests := map[string][]string{
		"missing weight":  {"classify", "--value", "1"},
		"malformed value": {"classify", "--weight", "1", "--value", "lots"},
		"zero weight":     {"classify", "--weight", "0"},
		"negative value":  {"classify", "--weight", "1", "--value", "-1"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runCLI(t, args...)

			assert.Error(t, err)
		})
	}
}
