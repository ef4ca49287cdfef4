package sentence

// Context carries the sentence containing a selection together with its
// immediate neighbors. Empty Previous/Next mean the selection sat at a
// sequence boundary, or that the selection could not be located at all and
// translation degrades to the raw selected text.
type Context struct {
	Previous string `json:"previous,omitempty"`
	Selected string `json:"selected"`
	Next     string `json:"next,omitempty"`
}

// Resolve segments the surrounding text, locates the selection in it and
// returns the selected sentence with its neighbors. It is a pure function:
// a selection that cannot be located is not an error, it just yields a
// context with no neighbors.
func (s *Segmenter) Resolve(selected, surrounding string) Context {
	sentences := s.Segment(surrounding)
	if len(sentences) == 0 {
		return Context{Selected: selected}
	}
	idx, ok := Locate(sentences, selected)
	if !ok {
		return Context{Selected: selected}
	}
	ctx := Context{Selected: sentences[idx]}
	if idx > 0 {
		ctx.Previous = sentences[idx-1]
	}
	if idx < len(sentences)-1 {
		ctx.Next = sentences[idx+1]
	}
	return ctx
}
