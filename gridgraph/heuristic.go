package gridgraph

import "math"

// Heuristic estimates the remaining cost from a cell to a fixed goal.
type Heuristic func(c Cell) float64

// Euclidean returns the straight-line distance to goal. Admissible under the
// 1/√2 step metric.
func Euclidean(goal Cell) Heuristic {
	return func(c Cell) float64 {
		return math.Hypot(float64(c.X-goal.X), float64(c.Y-goal.Y))
	}
}

// Octile returns the exact obstacle-free cost to goal under the 1/√2 metric:
// (√2-1)·min(dx,dy) + max(dx,dy). Admissible and never below Euclidean.
func Octile(goal Cell) Heuristic {
	return func(c Cell) float64 {
		dx := math.Abs(float64(c.X - goal.X))
		dy := math.Abs(float64(c.Y - goal.Y))
		return (math.Sqrt2-1)*math.Min(dx, dy) + math.Max(dx, dy)
	}
}

// Zero returns the null heuristic, which turns A* into uniform-cost search.
func Zero(Cell) Heuristic {
	return func(Cell) float64 { return 0 }
}

// PathCost sums the step costs of dirs.
func PathCost(dirs []Direction) float64 {
	var total float64
	for _, d := range dirs {
		total += d.Cost()
	}
	return total
}
