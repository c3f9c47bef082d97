package navigator

import "github.com/riordanpawley/storyboard/internal/ui/pages"

// Stack holds pages with push/pop at the top only
type Stack struct {
	pages []pages.Page
}

// NewStack creates a new empty page stack
func NewStack() *Stack {
	return &Stack{
		pages: make([]pages.Page, 0),
	}
}

// Push adds a page to the top of the stack
func (s *Stack) Push(p pages.Page) {
	s.pages = append(s.pages, p)
}

// Pop removes and returns the top page from the stack
// Returns nil if the stack is empty
func (s *Stack) Pop() pages.Page {
	if len(s.pages) == 0 {
		return nil
	}

	top := s.pages[len(s.pages)-1]
	s.pages[len(s.pages)-1] = nil
	s.pages = s.pages[:len(s.pages)-1]
	return top
}

// Current returns the top page without removing it
// Returns nil if the stack is empty
func (s *Stack) Current() pages.Page {
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[len(s.pages)-1]
}

// Len returns the number of pages on the stack
func (s *Stack) Len() int {
	return len(s.pages)
}

// IsEmpty returns true if the stack has no pages
func (s *Stack) IsEmpty() bool {
	return len(s.pages) == 0
}

// Clear removes all pages from the stack
func (s *Stack) Clear() {
	s.pages = make([]pages.Page, 0)
}
