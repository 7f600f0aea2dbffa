package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/dmrgraph/bfs"
	"github.com/katalvlaran/dmrgraph/core"
)

// pathGraph builds D0–G0–D1–G1–D2 plus the isolated gene G9.
// Indices: D0=0 D1=1 D2=2 G0=3 G1=4 G9=5.
func pathGraph(t testing.TB) *core.Indexed {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}} {
		if err := g.AddDMR(core.DMR{ID: p[0]}); err != nil {
			t.Fatal(err)
		}
		if err := g.AddGene(core.Gene{ID: p[1], Symbol: "G"}); err != nil {
			t.Fatal(err)
		}
		if _, err := g.AddEdge(p[0], p[1], core.SourceClosestGene); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddGene(core.Gene{ID: 9, Symbol: "G9"}); err != nil {
		t.Fatal(err)
	}

	return g.Indexed()
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrIndexedNil) {
		t.Errorf("nil snapshot: want ErrIndexedNil, got %v", err)
	}
	ix := pathGraph(t)
	if _, err := bfs.BFS(ix, 6); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("bad start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(ix, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_PathDepths checks order, depths and the reconstructed path.
func TestBFS_PathDepths(t *testing.T) {
	res, err := bfs.BFS(pathGraph(t), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 3, 1, 4, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 2, 4, 1, 3, -1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo(2)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []int{0, 3, 1, 4, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(2) = %v; want %v", path, want)
	}
	if _, err = res.PathTo(5); !errors.Is(err, bfs.ErrUnreached) {
		t.Errorf("PathTo(isolated): want ErrUnreached, got %v", err)
	}
}

// TestBFS_MaxDepthAndFilter covers depth limiting and edge filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	ix := pathGraph(t)
	res, err := bfs.BFS(ix, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(ix, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 4 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
	if res.Reached(2) {
		t.Error("D2 must be unreachable behind the filtered gene")
	}
}

// TestBFS_HooksAndCancel checks hook order, hook errors and cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	ix := pathGraph(t)
	var enq, deq []int
	_, err := bfs.BFS(ix, 4,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(enq, deq) {
		t.Errorf("enqueue order %v differs from dequeue order %v", enq, deq)
	}

	stop := errors.New("stop")
	res, err := bfs.BFS(ix, 0, bfs.WithOnVisit(func(v, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: want stop, got %v", err)
	}
	if res == nil || len(res.Order) != 3 {
		t.Errorf("partial result: want 3 visited, got %v", res)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(ix, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
