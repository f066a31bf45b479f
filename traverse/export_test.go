package traverse

// Test-bridge exposing private pieces of the round loop to white-box
// tests without widening the production API.

// DecideMode_TestOnly forwards to the private per-round strategy rule so
// the mode-selection state machine is testable in isolation from the
// parallel execution.
var DecideMode_TestOnly = decideMode

// Partition_TestOnly forwards to the private chunking helper, flattening
// spans to [lo,hi) pairs.
func Partition_TestOnly(n, workers int) [][2]int {
	var out [][2]int
	for _, s := range partition(n, workers) {
		out = append(out, [2]int{s.lo, s.hi})
	}

	return out
}

// Heuristic constants re-exported for the truth-table test.
const (
	LateRoundCutoff_TestOnly     = lateRoundCutoff
	SmallFrontierCutoff_TestOnly = smallFrontierCutoff
)
