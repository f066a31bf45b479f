// Package traverse implements the direction-optimizing parallel
// breadth-first engine: a round-synchronous loop that discovers every
// reachable vertex exactly once via an atomic claim and switches between
// push (top-down) and pull (bottom-up) strategies to bound total work.
package traverse

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/frontline/csr"
)

// Heuristic constants of the mode-selection rule.
const (
	// remainderDivisor: the remainder is first materialized once the
	// estimated top-down work exceeds V/remainderDivisor.
	remainderDivisor = 4
	// lateRoundCutoff, smallFrontierCutoff: past this many rounds, a
	// frontier smaller than the cutoff forces bottom-up to drain the
	// long sparse tail of high-diameter graphs.
	lateRoundCutoff     = 10
	smallFrontierCutoff = 100
)

// Traverse runs a single-source traversal of g starting at source,
// leaving the minimum hop count of every reachable vertex in dist and
// Unvisited everywhere else.
//
// dist is reset on entry; it must have exactly g.VertexCount() slots
// (ErrDistanceSize otherwise). Returns ErrNilGraph, ErrNilDistances or
// ErrSourceRange for invalid input and ErrOptionViolation for bad
// options. The final contents of dist are independent of the worker
// count and of scheduling order.
func Traverse(g *csr.Graph, source int, dist *DistanceVector, opts ...Option) error {
	c, err := prepare(g, dist, opts)
	if err != nil {
		return err
	}
	if source < 0 || source >= g.VertexCount() {
		return fmt.Errorf("%w: %d (V=%d)", ErrSourceRange, source, g.VertexCount())
	}

	// Seed: source claimed at distance 0, frontier = {source}.
	dist.Reset()
	dist.Claim(source, 0)
	c.frontier = append(c.frontier, int32(source))
	c.visited = 1

	return c.run()
}

// TraverseMultiSource runs the reachability variant: every vertex with
// at least one outgoing edge is claimed at distance 0 and seeds the
// initial frontier simultaneously. Used to measure overall connectivity
// rather than distances from one root.
func TraverseMultiSource(g *csr.Graph, dist *DistanceVector, opts ...Option) error {
	c, err := prepare(g, dist, opts)
	if err != nil {
		return err
	}

	dist.Reset()
	offsets, _ := g.Raw()
	for u := 0; u < g.VertexCount(); u++ {
		if offsets[u] < offsets[u+1] {
			dist.Claim(u, 0)
			c.frontier = append(c.frontier, int32(u))
		}
	}
	c.visited = len(c.frontier)

	return c.run()
}

// course carries the mutable state of one traversal: the working sets,
// the lazily-built remainder and transpose, and the round counter. It
// exists so the mode-selection state machine is an inspectable value
// rather than free-floating locals.
type course struct {
	graph *csr.Graph
	dist  *DistanceVector
	opts  Options

	// raw adjacency, shared read-only across workers
	offsets []int
	edges   []int32

	// transpose adjacency (in-neighbors), built with the remainder;
	// nil until remainderReady
	tOffsets []int
	tEdges   []int32

	frontier       []int32
	remainder      []int32
	remainderReady bool
	round          int // completed rounds; the current frontier's depth
	visited        int
}

// prepare validates inputs and options and assembles the course.
func prepare(g *csr.Graph, dist *DistanceVector, opts []Option) (*course, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dist == nil {
		return nil, ErrNilDistances
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if dist.Len() != g.VertexCount() {
		return nil, fmt.Errorf("%w: %d slots for %d vertices", ErrDistanceSize, dist.Len(), g.VertexCount())
	}

	offsets, edges := g.Raw()
	c := &course{
		graph:    g,
		dist:     dist,
		opts:     o,
		offsets:  offsets,
		edges:    edges,
		frontier: make([]int32, 0, g.VertexCount()),
	}

	return c, nil
}

// run executes rounds until the frontier empties. Each round: check
// cancellation, pick a mode, execute one parallel pass bounded by a
// barrier, merge and deduplicate discoveries, advance the working sets.
func (c *course) run() error {
	for len(c.frontier) > 0 {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}

		mode := decideMode(c.workEstimate(), len(c.frontier), len(c.remainder), c.round, c.remainderReady)

		var next []int32
		if mode == BottomUp {
			next = c.bottomUpRound()
		} else {
			// Materialize the remainder (an O(V) pass) only once the
			// projected push work crosses a quarter of the graph.
			if !c.remainderReady && c.workEstimate() > c.graph.VertexCount()/remainderDivisor {
				c.initRemainder()
			}
			next = c.topDownRound()
		}

		// Merge order depends on worker interleaving; sort + compact
		// canonicalizes the frontier so every later round is independent
		// of scheduling.
		slices.Sort(next)
		next = slices.Compact(next)

		if mode == BottomUp {
			// Full rescan, the dominant bottom-up cost; deliberately not
			// amortized (see package docs).
			c.rebuildRemainder()
		}

		c.visited += len(next)
		c.frontier = next
		c.round++

		if c.opts.OnRound != nil {
			c.opts.OnRound(RoundStats{
				Round:     c.round,
				Mode:      mode,
				Frontier:  len(c.frontier),
				Remainder: len(c.remainder),
				Visited:   c.visited,
			})
		}
	}

	return nil
}

// workEstimate projects the cost of a top-down round: frontier size
// times average degree.
func (c *course) workEstimate() int {
	return int(float64(len(c.frontier)) * c.graph.AvgDegree())
}

// decideMode is the per-round strategy rule. Pull (bottom-up) pays off
// once the projected push work exceeds the remainder size, or when a
// long traversal has shrunk to a trailing sparse frontier; until the
// remainder exists there is nothing to compare against, so push runs.
func decideMode(workEstimate, frontierLen, remainderLen, round int, remainderReady bool) Mode {
	if !remainderReady {
		return TopDown
	}
	if workEstimate > remainderLen || (round > lateRoundCutoff && frontierLen < smallFrontierCutoff) {
		return BottomUp
	}

	return TopDown
}

// initRemainder materializes the remainder and the transpose adjacency
// the pull strategy scans. Both are built at most once per traversal.
func (c *course) initRemainder() {
	c.remainder = make([]int32, 0, c.graph.VertexCount())
	c.rebuildRemainder()
	t := c.graph.Transpose()
	c.tOffsets, c.tEdges = t.Raw()
	c.remainderReady = true
}

// rebuildRemainder refilters the unvisited vertices in one O(V) pass.
func (c *course) rebuildRemainder() {
	c.remainder = c.remainder[:0]
	for u := 0; u < c.graph.VertexCount(); u++ {
		if c.dist.At(u) == Unvisited {
			c.remainder = append(c.remainder, int32(u))
		}
	}
}

// span is a half-open chunk [lo,hi) of a partitioned working set.
type span struct{ lo, hi int }

// partition splits n items into at most workers contiguous,
// non-overlapping chunks.
func partition(n, workers int) []span {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	spans := make([]span, 0, workers)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo: lo, hi: hi})
	}

	return spans
}

// topDownRound expands the frontier: every worker walks its chunk of
// frontier vertices, attempts Claim(v, depth+1) on each out-neighbor v,
// and collects successes in a private buffer. Buffers are merged under
// one mutex after the barrier, the single contention point per round.
func (c *course) topDownRound() []int32 {
	candidate := int32(c.round) + 1
	next := make([]int32, 0, c.workEstimate())

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, s := range partition(len(c.frontier), c.opts.Workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var local []int32
			for _, u := range c.frontier[lo:hi] {
				for _, v := range c.edges[c.offsets[u]:c.offsets[u+1]] {
					if c.dist.Claim(int(v), candidate) {
						local = append(local, v)
					}
				}
			}
			mu.Lock()
			next = append(next, local...)
			mu.Unlock()
		}(s.lo, s.hi)
	}
	wg.Wait()

	return next
}

// bottomUpRound scans the remainder: every worker walks its chunk of
// unvisited vertices, and each vertex u searches its in-neighbors for
// one already settled at the frontier's depth, claiming u from the first
// hit. The scan stops at the first claim attempt for u: by the round
// barrier every settled in-neighbor carries the same depth, so any hit
// is distance-correct.
//
// The depth guard (dv <= depth) skips vertices claimed concurrently
// within this same round, whose distances belong to the next level.
func (c *course) bottomUpRound() []int32 {
	depth := int32(c.round)
	next := make([]int32, 0, len(c.remainder))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, s := range partition(len(c.remainder), c.opts.Workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var local []int32
			for _, u := range c.remainder[lo:hi] {
				if c.dist.At(int(u)) != Unvisited {
					continue // stale remainder entry
				}
				for _, v := range c.tEdges[c.tOffsets[u]:c.tOffsets[u+1]] {
					dv := c.dist.At(int(v))
					if dv == Unvisited || dv > depth {
						continue
					}
					if c.dist.Claim(int(u), dv+1) {
						local = append(local, u)
					}
					// claimed by us or by a racing worker either way
					break
				}
			}
			mu.Lock()
			next = append(next, local...)
			mu.Unlock()
		}(s.lo, s.hi)
	}
	wg.Wait()

	return next
}
