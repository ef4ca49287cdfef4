package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	s := NewSegmenter(nil)

	tests := []struct {
		name        string
		selected    string
		surrounding string
		want        Context
	}{
		{
			name:        "middle sentence gets both neighbors",
			selected:    "cat",
			surrounding: "The dog ran. The cat sat. The bird flew.",
			want:        Context{Previous: "The dog ran.", Selected: "The cat sat.", Next: "The bird flew."},
		},
		{
			name:        "first sentence has no previous",
			selected:    "dog",
			surrounding: "The dog ran. The cat sat.",
			want:        Context{Selected: "The dog ran.", Next: "The cat sat."},
		},
		{
			name:        "last sentence has no next",
			selected:    "bird",
			surrounding: "The cat sat. The bird flew.",
			want:        Context{Previous: "The cat sat.", Selected: "The bird flew."},
		},
		{
			name:        "single sentence block",
			selected:    "fragment",
			surrounding: "a lone fragment",
			want:        Context{Selected: "a lone fragment"},
		},
		{
			name:        "unlocatable selection degrades to the raw text",
			selected:    "nonsense-xyz",
			surrounding: "Alpha. Beta. Gamma.",
			want:        Context{Selected: "nonsense-xyz"},
		},
		{
			name:        "empty surrounding degrades to the raw text",
			selected:    "hello",
			surrounding: "",
			want:        Context{Selected: "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.selected, tt.surrounding))
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	s := NewSegmenter(nil)
	first := s.Resolve("cat", "The dog ran. The cat sat. The bird flew.")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Resolve("cat", "The dog ran. The cat sat. The bird flew."))
	}
}
