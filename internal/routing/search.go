package routing

import (
	"container/heap"
	"math"
	"time"

	"github.com/bodaroute/bodaroute/internal/models"
)

// Engine runs the shared best-first search loop over a RoadNetwork.
// The four algorithm variants differ only in the cost function and the
// optional heuristic supplied to findPath, so tie-breaking and
// termination behave identically across variants.
type Engine struct {
	network *RoadNetwork
	cost    *CostModel
}

func NewEngine(network *RoadNetwork) *Engine {
	return &Engine{network: network, cost: NewCostModel()}
}

func (e *Engine) Network() *RoadNetwork { return e.network }

func (e *Engine) CostModel() *CostModel { return e.cost }

// edgeCostFunc computes the traversal cost of one edge under the active
// variant. Costs must be strictly positive.
type edgeCostFunc func(edge *models.Edge) (float64, error)

// heuristicFunc estimates the remaining cost from a node to the
// destination. It must never overestimate (admissibility); nil means
// no heuristic.
type heuristicFunc func(node string) float64

// findPath is the single search core shared by all variants: a lazy
// decrease-key Dijkstra loop whose priority key is distance plus the
// heuristic estimate. It terminates when the destination is settled or
// the queue drains (disconnected graph), which is a valid outcome, not
// an error: the result then carries Found=false with the search-effort
// metrics intact.
func (e *Engine) findPath(origin, destination string, edgeCost edgeCostFunc, heuristic heuristicFunc) (*models.RouteResult, error) {
	if _, err := e.network.Node(origin); err != nil {
		return nil, err
	}
	if _, err := e.network.Node(destination); err != nil {
		return nil, err
	}

	started := time.Now()

	dist := make(map[string]float64, e.network.NodeCount())
	for _, id := range e.network.NodeIDs() {
		dist[id] = math.Inf(1)
	}
	dist[origin] = 0

	parent := make(map[string]string, e.network.NodeCount())
	visited := make(map[string]bool, e.network.NodeCount())

	estimate := func(node string) float64 {
		if heuristic == nil {
			return 0
		}
		return heuristic(node)
	}

	pq := make(searchQueue, 0, e.network.NodeCount())
	heap.Init(&pq)
	seq := 0
	push := func(node string, priority float64) {
		heap.Push(&pq, &searchItem{node: node, priority: priority, seq: seq})
		seq++
	}
	push(origin, estimate(origin))

	explored := 0
	reached := false

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*searchItem)
		u := item.node
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true
		explored++

		if u == destination {
			reached = true
			break
		}

		edges, err := e.network.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			v := edge.To
			if visited[v] {
				continue
			}
			cost, err := edgeCost(edge)
			if err != nil {
				return nil, err
			}
			candidate := dist[u] + cost
			if candidate < dist[v] {
				dist[v] = candidate
				parent[v] = u
				push(v, candidate+estimate(v))
			}
		}
	}

	result := &models.RouteResult{
		NodesExplored: explored,
		ElapsedMicros: time.Since(started).Microseconds(),
	}
	if !reached {
		return result, nil
	}

	result.Found = true
	result.TotalCost = dist[destination]
	result.Path = reconstructPath(parent, origin, destination)
	return result, nil
}

func reconstructPath(parent map[string]string, origin, destination string) []string {
	path := []string{destination}
	for current := destination; current != origin; {
		current = parent[current]
		path = append(path, current)
	}
	// Reverse in place: parents were walked destination-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// searchItem is one priority-queue entry. seq records insertion order
// so equal-priority nodes are extracted first-in first-out, keeping
// experiment runs reproducible.
type searchItem struct {
	node     string
	priority float64
	seq      int
}

type searchQueue []*searchItem

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q searchQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchQueue) Push(x interface{}) { *q = append(*q, x.(*searchItem)) }

func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
