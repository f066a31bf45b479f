package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/frontline/csr"
)

// FromFile loads a directed graph from a whitespace-separated edge list:
// two integer vertex IDs per edge, "from to". IDs need not be contiguous
// or zero-based; every distinct ID is remapped to a dense [0,V) index in
// first-seen order, which keeps loads reproducible. Duplicate edges and
// self-loops are preserved exactly as written.
//
// Returns ErrUnreadable (wrapping the underlying error) when the file
// cannot be opened, and ErrBadEdgeToken for non-integer or unpaired
// tokens.
func FromFile(path string) (*csr.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	return FromReader(f)
}

// FromReader reads the same whitespace-separated format as FromFile from
// an arbitrary stream.
func FromReader(r io.Reader) (*csr.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	var raw [][2]int64
	for sc.Scan() {
		from, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdgeToken, sc.Text())
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: dangling source ID %d", ErrBadEdgeToken, from)
		}
		to, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdgeToken, sc.Text())
		}
		raw = append(raw, [2]int64{from, to})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("builder: reading edge list: %w", err)
	}

	return FromEdgeList(raw)
}

// FromEdgeList builds a graph from in-memory (from,to) ID pairs under
// the same dense-remapping contract as FromFile.
//
// Returns ErrNoVertices for an empty list: an edge list mentions
// vertices only through its edges, so no edges means no graph.
func FromEdgeList(raw [][2]int64) (*csr.Graph, error) {
	if len(raw) == 0 {
		return nil, ErrNoVertices
	}

	// First-seen-order remap of sparse IDs to [0,V).
	remap := make(map[int64]int32, len(raw))
	dense := func(id int64) int32 {
		idx, ok := remap[id]
		if !ok {
			idx = int32(len(remap))
			remap[id] = idx
		}

		return idx
	}

	pairs := make([][2]int32, len(raw))
	for i, e := range raw {
		pairs[i] = [2]int32{dense(e[0]), dense(e[1])}
	}

	return assemble(len(remap), pairs)
}
