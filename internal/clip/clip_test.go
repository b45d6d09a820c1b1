package clip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoresLastWrite(t *testing.T) {
	t.Parallel()

	m := NewMemory(nil)
	require.NoError(t, m.Write("first"))
	require.NoError(t, m.Write("second"))
	assert.Equal(t, "second", m.Text())
}

func TestMemoryFailsWithConfiguredError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m := NewMemory(boom)
	require.ErrorIs(t, m.Write("text"), boom)
	assert.Empty(t, m.Text())
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "single line", text: "go get x", want: `"go get x"`},
		{name: "multi line", text: "a\nb\nc\n", want: "3 lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Summary(tt.text))
		})
	}
}

var _ Clipboard = System{}
var _ Clipboard = (*Memory)(nil)
