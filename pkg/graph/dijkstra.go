// Package graph implements the edge-graph shortest-path solver (spec
// §4.3): single-pair Dijkstra over a mesh's adjacency list with
// Euclidean edge weights.
package graph

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/nilsaker/geolab/internal/errs"
	"github.com/nilsaker/geolab/pkg/mesh"
)

// Result is the outcome of a single-pair Dijkstra query.
type Result struct {
	TotalDistance float64 // meaningful only if Reachable
	Reachable     bool
	Path          []int
	AllDistances  []float64
}

// unreachable is the large-finite sentinel spec §9 prescribes for
// allDistances entries that Dijkstra never reached.
const unreachable = math.MaxFloat64

// item is one entry of the Dijkstra priority queue.
type item struct {
	vertex int
	dist   float64
}

type priorityQueue []item

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(item)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// ShortestPath computes the single-pair shortest path from start to
// end over m's edge graph. Tie-breaking between equal tentative
// distances follows insertion order into the heap, which is
// deterministic for a given mesh.
func ShortestPath(m *mesh.Mesh, start, end int) (Result, error) {
	n := m.VertexCount()
	if n == 0 {
		return Result{}, fmt.Errorf("%w", errs.ErrEmptyMesh)
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return Result{}, fmt.Errorf("%w", errs.ErrInvalidIndex)
	}

	dist := make([]float64, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = unreachable
		parent[i] = -1
	}
	dist[start] = 0

	pq := &priorityQueue{{vertex: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		u := cur.vertex
		if visited[u] {
			continue
		}
		if cur.dist > dist[u] {
			continue
		}
		visited[u] = true
		if u == end {
			break
		}
		for _, e := range m.Neighbors(u) {
			nd := dist[u] + e.Weight
			if nd < dist[e.Neighbor] {
				dist[e.Neighbor] = nd
				parent[e.Neighbor] = u
				heap.Push(pq, item{vertex: e.Neighbor, dist: nd})
			}
		}
	}

	reachable := start == end || parent[end] != -1
	var path []int
	if reachable {
		for v := end; v != -1; v = parent[v] {
			path = append(path, v)
			if v == start {
				break
			}
		}
		reverse(path)
	}

	total := dist[end]
	if !reachable {
		total = 0
	}

	return Result{
		TotalDistance: total,
		Reachable:     reachable,
		Path:          path,
		AllDistances:  dist,
	}, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
