package search

import "github.com/varnhold/lexent/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to surface intermediate state, such as the
// processed and expanded token previews a CLI prints in verbose mode.
// Callbacks run on the calling goroutine, after the scoring fan-in.
type SearchMonitor interface {
	Start(query string)
	AfterNormalize(tokens []string)
	AfterExpand(terms []string)
	DocumentScored(doc *core.Document, score int)
	Finish(results []*core.Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterNormalize(_ []string)            {}
func (n *noopMonitor) AfterExpand(_ []string)               {}
func (n *noopMonitor) DocumentScored(_ *core.Document, _ int) {}
func (n *noopMonitor) Finish(_ []*core.Result)              {}
