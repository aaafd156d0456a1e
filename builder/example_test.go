package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cimnet/builder"
)

// ExampleBuildNetwork builds a seeded scale-free network.
func ExampleBuildNetwork() {
	net, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.ScaleFree(100, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(net)

	// Output:
	// Network(nodes=100, edges=196)
}

// ExampleGrid shows the row-major index layout of a toroidal lattice.
func ExampleGrid() {
	net, _ := builder.BuildNetwork(nil, builder.Grid(3, 3, 4))
	fmt.Println(net.SortedNodes())
	fmt.Println(net.Degree(4), net.HasEdge(4, 1), net.HasEdge(0, 2))

	// Output:
	// [0 1 2 3 4 5 6 7 8]
	// 4 true true
}
