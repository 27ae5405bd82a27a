package crawler

// Frontier is the ordered set of links extracted from the seed page.
// Each URL is accepted once; later duplicates are rejected.
type Frontier struct {
	items   []string
	visited map[string]bool
}

// NewFrontier creates an empty frontier
func NewFrontier() *Frontier {
	return &Frontier{
		items:   make([]string, 0),
		visited: make(map[string]bool),
	}
}

// Push adds a link if it has not been seen before
// Returns true if added, false if duplicate
func (f *Frontier) Push(link string) bool {
	if f.visited[link] {
		return false
	}

	f.visited[link] = true
	f.items = append(f.items, link)
	return true
}

// Pop removes and returns the first link
// Returns ("", false) when the frontier is empty
func (f *Frontier) Pop() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}

	link := f.items[0]
	f.items = f.items[1:]
	return link, true
}

// Size returns the number of links not yet popped
func (f *Frontier) Size() int {
	return len(f.items)
}

// IsEmpty returns true if no links are left
func (f *Frontier) IsEmpty() bool {
	return len(f.items) == 0
}
