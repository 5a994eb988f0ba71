package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchInput_Validate(t *testing.T) {
	tests := []struct {
		name       string
		input      BatchInput
		wantFields []string
	}{
		{
			name:       "empty",
			input:      BatchInput{},
			wantFields: []string{"notifications"},
		},
		{
			name: "valid",
			input: BatchInput{Notifications: []BatchNotification{
				{Title: "Code sent"},
				{Severity: "success", Title: "Email verified", Description: "You're in."},
			}},
		},
		{
			name: "bad entries",
			input: BatchInput{Notifications: []BatchNotification{
				{Title: "ok"},
				{Severity: "loud", Title: " "},
			}},
			wantFields: []string{"notifications[1].title", "notifications[1].severity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)

			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestBatchCmd(t *testing.T) {
	input := `{"notifications":[
		{"title":"Code sent"},
		{"severity":"error","title":"Invalid code"},
		{"severity":"error","title":"Invalid code"},
		{"severity":"success","title":"Email verified"}
	]}`

	var out, errOut bytes.Buffer
	cmd := NewBatchCmd(fastFlags())
	cmd.fr.WithStdin(strings.NewReader(input))
	cmd.plain = true

	app := cmd.Register(newTestApp(&out, &errOut))
	require.NoError(t, runApp(t, app, "batch", "--plain"))

	var report BatchOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	require.Len(t, report.Results, 4)
	assert.Equal(t, StatusQueued, report.Results[0].Status)
	assert.Equal(t, StatusQueued, report.Results[1].Status)
	assert.Equal(t, StatusSuppressed, report.Results[2].Status)
	assert.Equal(t, StatusQueued, report.Results[3].Status)

	assert.Equal(t, uint64(3), report.Stats.Displayed)
	assert.Equal(t, uint64(1), report.Stats.Suppressed)

	rendered := errOut.String()
	codeSent := strings.Index(rendered, "Code sent")
	verified := strings.Index(rendered, "Email verified")
	require.NotEqual(t, -1, codeSent)
	require.NotEqual(t, -1, verified)
	assert.Less(t, codeSent, verified)
}

func TestBatchCmd_invalid_input(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewBatchCmd(fastFlags())
	cmd.fr.WithStdin(strings.NewReader(`{"notifications":[]}`))

	app := cmd.Register(newTestApp(&out, &errOut))
	require.NoError(t, runApp(t, app, "batch"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "invalid input")
}
