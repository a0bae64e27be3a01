package recommend

import (
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/index"
	"github.com/poiesic/assessrec/skills"
)

// Monitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps during a query.
type Monitor interface {
	Start(query string, k int)
	AfterRequirements(reqs *ai.Requirements)
	AfterProfile(profile skills.Profile)
	AfterRetrieval(matches []index.Match)
	AfterRerank(order []int)
	AfterBalance(technical, soft int)
	Finish(results []Candidate)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)              {}
func (n *noopMonitor) AfterRequirements(_ *ai.Requirements) {}
func (n *noopMonitor) AfterProfile(_ skills.Profile)      {}
func (n *noopMonitor) AfterRetrieval(_ []index.Match)     {}
func (n *noopMonitor) AfterRerank(_ []int)                {}
func (n *noopMonitor) AfterBalance(_, _ int)              {}
func (n *noopMonitor) Finish(_ []Candidate)               {}
