package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchCommand tests match argument handling end to end through the root
// command
func TestMatchCommand(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "urn against truncated hex",
			args: []string{"match", goldenURN, "612937d5"},
		},
		{
			name: "case insensitive",
			args: []string{"match", goldenURN, "612937D58F83"},
		},
		{
			name:    "differing values",
			args:    []string{"match", goldenURN, "45e6b0e1"},
			wantErr: true,
		},
		{
			name:    "payload below minimum length",
			args:    []string{"match", goldenURN, "612"},
			wantErr: true,
		},
		{
			name:    "missing argument",
			args:    []string{"match", goldenURN},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rootCmd.SetArgs(tc.args)
			err := rootCmd.Execute()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
