// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// AStar находит кратчайший путь от start до goal. Returns nil when there is none.
func AStar(start, goal Hex, hm *HexMap) []Hex {
	if !hm.IsPassable(start) || !hm.IsPassable(goal) {
		return nil
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Hex: start, Priority: 0})
	cameFrom := map[Hex]Hex{}
	costSoFar := map[Hex]int{start: 0}
	seq := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Hex == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		for _, neighbor := range current.Hex.Neighbors() {
			if !hm.IsPassable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Hex] + 1
			if old, seen := costSoFar[neighbor]; !seen || newCost < old {
				costSoFar[neighbor] = newCost
				cameFrom[neighbor] = current.Hex
				seq++
				heap.Push(pq, &Node{Hex: neighbor, Priority: newCost + neighbor.Distance(goal), seq: seq})
			}
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*. Equal priorities pop in insertion order so paths are deterministic.
type PriorityQueue []*Node

type Node struct {
	Hex      Hex
	Priority int
	seq      int
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x any) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(cameFrom map[Hex]Hex, start, goal Hex) []Hex {
	path := []Hex{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
