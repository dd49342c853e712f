package form

import "github.com/uddict/dictation-app/cli/internal/record"

// CycleGuard tracks the branches on the current recursion path by identity.
// Two distinct branches with equal contents are never confused.
type CycleGuard struct {
	path []*record.Branch
}

// Admit reports whether descending into child is safe, that is, child is not
// already an ancestor on the path.
func (g *CycleGuard) Admit(child *record.Branch) bool {
	for _, ancestor := range g.path {
		if ancestor == child {
			return false
		}
	}
	return true
}

// Enter pushes b onto the path.
func (g *CycleGuard) Enter(b *record.Branch) {
	g.path = append(g.path, b)
}

// Leave pops the most recent branch.
func (g *CycleGuard) Leave() {
	if len(g.path) > 0 {
		g.path = g.path[:len(g.path)-1]
	}
}

// Depth returns the number of branches on the path.
func (g *CycleGuard) Depth() int {
	return len(g.path)
}
