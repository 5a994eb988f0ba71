package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{in: "success", want: SeveritySuccess},
		{in: "ERROR", want: SeverityError},
		{in: " info ", want: SeverityInfo},
		{in: "warning", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_assigns_unique_ids(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	a := New(SeverityInfo, "Saved", "", now)
	b := New(SeverityInfo, "Saved", "", now)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, now, a.CreatedAt)
	assert.False(t, a.HasDescription())
}

func TestSinkFunc(t *testing.T) {
	var got []string
	var s Sink = SinkFunc(func(n Notification) { got = append(got, n.Title) })

	s.Render(Notification{Title: "one"})
	s.Clear()

	assert.Equal(t, []string{"one"}, got)
}
