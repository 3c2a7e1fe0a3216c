package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single line",
			input: "2 N/m^2\n",
			want:  []string{"2 N/m^2"},
		},
		{
			name:  "whitespace trimmed",
			input: "  10 km/h  \n",
			want:  []string{"10 km/h"},
		},
		{
			name:  "last line without newline",
			input: "1 ft\n3 psi",
			want:  []string{"1 ft", "3 psi"},
		},
		{
			name:  "empty line",
			input: "\n",
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewLineReader(strings.NewReader(tt.input))
			ctx := context.Background()

			for _, want := range tt.want {
				line, err := reader.ReadLine(ctx)
				require.NoError(t, err)
				assert.Equal(t, want, line)
			}

			_, err := reader.ReadLine(ctx)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestLineReader_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	reader := NewLineReader(pr)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := reader.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
