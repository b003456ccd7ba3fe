package iso8601

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantUnix int64
	}{
		{
			name:     "numeric offset",
			input:    "1997-08-14T01:24:21+00:00",
			wantUnix: 871521861,
		},
		{
			name:     "zulu with fractional seconds",
			input:    "2019-02-13T11:00:00.000Z",
			wantUnix: 1550055600,
		},
		{
			name:     "zulu without fractional seconds",
			input:    "2016-07-30T09:27:06Z",
			wantUnix: 1469870826,
		},
		{
			name:     "fractional seconds are discarded",
			input:    "2019-02-13T11:00:00.999Z",
			wantUnix: 1550055600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnix, got.Unix())
			assert.Equal(t, "UTC", got.Location().String())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"not-a-timestamp",
		"2019-02-13",
		"2019-13-40T99:00:00Z",
	}

	for _, input := range inputs {
		_, err := Parse(input)
		assert.Error(t, err, "expected %q to be rejected", input)
	}
}
