package flow

// History is the stack of pages the filler left, used for back navigation.
// The zero value is an empty history.
type History []string

// Push records that the filler left pageID.
func (h *History) Push(pageID string) {
	*h = append(*h, pageID)
}

// Back pops the most recent page. ok is false when the history is empty.
func (h *History) Back() (pageID string, ok bool) {
	n := len(*h)
	if n == 0 {
		return "", false
	}
	pageID = (*h)[n-1]
	*h = (*h)[:n-1]
	return pageID, true
}

// Peek returns the most recent page without removing it.
func (h History) Peek() (string, bool) {
	if len(h) == 0 {
		return "", false
	}
	return h[len(h)-1], true
}

// Len returns the depth of the history.
func (h History) Len() int { return len(h) }
