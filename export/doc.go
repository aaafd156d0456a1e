// Package export writes cimnet networks as delimiter-separated text and
// renders them through Graphviz.
//
// Text formats:
//
//	edge list        src,dst                one line per edge (undirected: First <= Second)
//	adjacency list   node,n1,n2,...         successors for directed networks;
//	                                        a node of degree 0 is written as "node,"
//	adjacency matrix ,h1,h2,...             optional header row and column
//	                 h1,0,1,...             1 iff IsNeighbor (undirected) / HasSuccessor (directed)
//
// Every function is generic in the node key and consumes a Source, which
// both core engines satisfy. The key type is not inferred from the engine,
// so callers name it:
//
//	err := export.WriteEdgeList[core.ID](os.Stdout, net, export.WithSortedNodes())
//
// Without WithSortedNodes, output follows the engine's map iteration order.
package export
