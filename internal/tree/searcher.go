package tree

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
	"github.com/manuelguarniz/project-nlp-simplified/internal/metrics"
)

// Path confidence blends three normalized sub-scores. The efficiency term is
// driven by the backtrack counter, which the strictly descending traversal
// never increments; it is kept because the result shape carries it.
const (
	depthConfidenceWeight = 0.4
	visitConfidenceWeight = 0.3
	efficiencyWeight      = 0.3
)

// Searcher walks the decision tree for preprocessed inputs. The node table is
// read-only shared state; the memoization cache is the only mutable state and
// is internally synchronized, so a Searcher is safe for concurrent use.
type Searcher struct {
	tree  *Tree
	opts  config.TreeSearchOptions
	clock clockwork.Clock
	cache *resultCache // nil when memoization is disabled
}

// NewSearcher creates a searcher over the given tree. The clock drives the
// traversal timeout and is injectable for tests.
func NewSearcher(t *Tree, opts config.Options, clock clockwork.Clock) *Searcher {
	s := &Searcher{
		tree:  t,
		opts:  opts.TreeSearch,
		clock: clock,
	}
	if opts.EnableMemoization {
		s.cache = newResultCache(opts.TreeSearch.CacheSize)
	}
	return s
}

// Search descends from the root until it reaches a leaf, evaluating each
// decision node's condition against the input. It fails when the timeout
// elapses, the path reaches max depth without a leaf, or a branch targets a
// missing node.
func (s *Searcher) Search(in *domain.Input) (*domain.SearchResult, error) {
	start := s.clock.Now()

	var key string
	if s.cache != nil {
		key = cacheKey(in)
		if cached, ok := s.cache.Get(key); ok {
			cached.CacheHits = 1
			cached.Elapsed = s.clock.Since(start)
			return cached, nil
		}
	}

	path := make([]string, 0, s.opts.MaxDepth)
	nodesVisited := 0
	currentID := RootID

	for currentID != "" && len(path) < s.opts.MaxDepth {
		if s.clock.Since(start) > s.opts.Timeout {
			return nil, apperrors.TreeSearch("tree search timed out").
				WithContext("timeout", s.opts.Timeout.String()).
				WithContext("path", path)
		}

		node, ok := s.tree.Lookup(currentID)
		if !ok {
			return nil, apperrors.TreeSearch(fmt.Sprintf("node %q not found in tree", currentID)).
				WithContext("path", path)
		}
		path = append(path, currentID)
		nodesVisited++

		leaf, isLeaf := node.(*LeafNode)
		if isLeaf {
			result := &domain.SearchResult{
				Path:            path,
				Scores:          leaf.Scores().Clone(),
				MatchedKeywords: s.keywordsFromPath(path),
				Confidence:      pathConfidence(len(path), nodesVisited, 0),
				Depth:           len(path),
				NodesVisited:    nodesVisited,
				Elapsed:         s.clock.Since(start),
			}
			metrics.TreeNodesVisited.Observe(float64(nodesVisited))
			if s.cache != nil {
				s.cache.Put(key, result)
			}
			return result, nil
		}

		decision := node.(*DecisionNode)
		if decision.Cond != nil {
			if decision.Cond.Eval(in) {
				currentID = decision.Branches["true"]
			} else {
				currentID = decision.Branches["false"]
			}
		} else {
			currentID = decision.Branches["default"]
			if currentID == "" {
				currentID = decision.Branches["true"]
			}
		}
	}

	return nil, apperrors.TreeSearch("no leaf node reached").
		WithContext("path", path).
		WithContext("max_depth", s.opts.MaxDepth)
}

// keywordsFromPath attributes each visited node's keywords to that node's
// highest-scoring sentiment.
func (s *Searcher) keywordsFromPath(path []string) map[domain.Sentiment][]string {
	matched := domain.EmptyKeywordMatches()
	for _, id := range path {
		node, ok := s.tree.Lookup(id)
		if !ok {
			continue
		}
		dominant, ok := node.Scores().Dominant()
		if !ok {
			continue
		}
		matched[dominant] = append(matched[dominant], node.Keywords()...)
	}
	return matched
}

func pathConfidence(pathLen, nodesVisited, backtracks int) float64 {
	if pathLen == 0 {
		return 0
	}
	depthConfidence := min(1.0, float64(pathLen)/5.0)
	visitConfidence := min(1.0, float64(nodesVisited)/10.0)
	efficiency := max(0.5, 1.0-float64(backtracks)/5.0)

	confidence := depthConfidence*depthConfidenceWeight +
		visitConfidence*visitConfidenceWeight +
		efficiency*efficiencyWeight
	return min(1.0, confidence)
}

// Info reports tree structure plus the live cache size.
func (s *Searcher) Info() Info {
	info := s.tree.Info()
	if s.cache != nil {
		info.CacheSize = s.cache.Len()
	}
	return info
}

// ClearCache drops all memoized results.
func (s *Searcher) ClearCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// CacheLen returns the number of memoized results.
func (s *Searcher) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}
