package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", in: "2024-01-10", want: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: " 2024-01-10 ", want: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp drops time of day", in: "2024-03-05T17:45:00Z", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "impossible day", in: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range Statuses {
		assert.NoError(t, s.Validate())
	}

	err := Status("ghosted").Validate()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Error(t, Status("").Validate())
}

func TestStatus_Schema(t *testing.T) {
	schema := StatusApplied.Schema(nil)

	assert.Equal(t, "string", schema.Type)
	assert.Len(t, schema.Enum, len(Statuses))
	assert.Contains(t, schema.Enum, "rejected")
}
