// Package cimnet is an in-memory complex-network toolkit: a generic graph
// engine, reproducible topology generators and a few simulations built on top.
//
// Packages:
//
//	core/    - Undirected and Directed graphs with typed node and edge payloads
//	random/  - MT19937 generator with the seeding used by the C++ reference runs
//	builder/ - functional constructors: complete, regular, ER, lattices, scale-free
//	export/  - edge list, adjacency list/matrix, DOT and SVG writers
//	sim/     - SIR epidemic and host-network traffic models
//
// The cimnet command (cmd/cimnet) wires these together:
//
//	cimnet generate scalefree --n 1000 --m 3 -f dot -o net.dot
//	cimnet stats grid --width 50 --height 50
//	cimnet sir --n 5000 --beta 0.3 --gamma 0.1 --steps 100
//
// Quick example:
//
//	net, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.ScaleFree(500, 2),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(net) // Network(nodes=500, edges=996)
package cimnet
