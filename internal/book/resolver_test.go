package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(NewMemoryStore(DefaultSeed()))

	tests := []struct {
		name  string
		raw   string
		found bool
		want  Book
	}{
		{name: "existing", raw: "2", found: true, want: Book{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee"}},
		{name: "missing", raw: "9999"},
		{name: "non-numeric", raw: "abc"},
		{name: "numeric prefix", raw: "1abc"},
		{name: "decimal", raw: "1.5"},
		{name: "empty", raw: ""},
		{name: "zero", raw: "0"},
		{name: "negative", raw: "-1"},
		{name: "overflow", raw: "99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.raw)
			if !tt.found {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = ParseID(" 42")
	assert.False(t, ok)
}
