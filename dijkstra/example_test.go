// Package dijkstra_test provides examples demonstrating shortest-path queries
// over the cafeteria floor.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/cafeteria/dijkstra"
	"github.com/katalvlaran/cafeteria/facility"
)

// ExampleShortestPaths prints walking distances from the entrance (node 0)
// of the reference floor.
func ExampleShortestPaths() {
	g := facility.Sample()

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	// Output: [0 3 2 4 10 9]
}

// ExampleResult_Path rebuilds the route to the far seating area.
func ExampleResult_Path() {
	g := facility.Sample()

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.Path(4)
	fmt.Printf("route=%v cost=%d\n", path, res.Dist[4])
	// Output: route=[0 2 3 4] cost=10
}

// ExampleShortestPaths_unreachable shows how isolated nodes are reported.
func ExampleShortestPaths_unreachable() {
	g, _ := facility.New(3)
	g.AddEdge(0, 1, 5)

	res, _ := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	for v := 0; v < g.Order(); v++ {
		if d, ok := res.Distance(v); ok {
			fmt.Printf("node %d = %d\n", v, d)
		} else {
			fmt.Printf("node %d = Unreachable\n", v)
		}
	}
	// Output:
	// node 0 = 0
	// node 1 = 5
	// node 2 = Unreachable
}
