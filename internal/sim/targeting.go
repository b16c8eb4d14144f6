// internal/sim/targeting.go
package sim

// Range search runs against edge direction: bees arrive at a place through
// its sources, so the closest threats lie backward along them. Both queries
// below are breadth-first from the thrower's own place, counting one hop
// per edge. A place is visited at most once even when reachable over
// several paths; its first-discovered distance is the one that counts.

type searchNode struct {
	place    *Place
	distance int
}

// targetPlace returns the nearest colony place within the inclusive
// [minimumRange, maximumRange] hop bounds that currently holds at least one
// bee, or nil if there is none. Ties at equal distance go to the place
// discovered first, which follows the order sources were registered in.
func targetPlace(root *Place, minimumRange, maximumRange int) *Place {
	if maximumRange < 0 {
		return nil
	}
	visited := map[*Place]bool{root: true}
	queue := []searchNode{{root, 0}}
	head := 0
	for head < len(queue) {
		node := queue[head]
		head++

		if node.distance >= minimumRange && node.place.colony && len(node.place.bees) > 0 {
			return node.place
		}
		if node.distance >= maximumRange {
			continue
		}
		for _, source := range node.place.sources {
			if !visited[source] {
				visited[source] = true
				queue = append(queue, searchNode{source, node.distance + 1})
			}
		}
	}
	return nil
}

// inRangeBees collects every bee at any colony place reachable within the
// inclusive hop bounds, in discovery order.
func inRangeBees(root *Place, minimumRange, maximumRange int) []*Bee {
	if maximumRange < 0 {
		return nil
	}
	var bees []*Bee
	visited := map[*Place]bool{root: true}
	queue := []searchNode{{root, 0}}
	head := 0
	for head < len(queue) {
		node := queue[head]
		head++

		if node.distance >= minimumRange && node.place.colony {
			bees = append(bees, node.place.bees...)
		}
		if node.distance >= maximumRange {
			continue
		}
		for _, source := range node.place.sources {
			if !visited[source] {
				visited[source] = true
				queue = append(queue, searchNode{source, node.distance + 1})
			}
		}
	}
	return bees
}
