// Package core provides the generic in-memory network engine of cimnet:
// an undirected graph and a directed graph whose nodes and edges each carry
// one caller-typed payload.
//
// A network N = (V,E) is parameterized by three types:
//
//   - K: the node key (any cmp.Ordered type; default ID = uint).
//   - N: the node payload (default None).
//   - E: the edge payload (default None).
//
// Storage model:
//
//	nodes[id]       = *N                 // stable pointer, Node(id) returns it
//	adj[id1][id2]   = handle             // undirected: mirrored as adj[id2][id1]
//	succ[from][to]  = handle             // directed: lockstep with pred[to][from]
//	arena[handle]   = *E                 // single owner of every edge payload
//
// Both adjacency slots of an edge hold the same handle, so Edge(a,b) and
// Edge(b,a) return the identical *E, and removing or replacing an edge
// releases its payload exactly once through the arena. A self-loop occupies a
// single slot.
//
// Core Methods (Undirected; Directed mirrors them with successor/predecessor
// variants):
//
//	AddNode(id, data)           // O(1): insert or overwrite payload
//	EnsureNode(id)              // O(1): insert with zero payload if absent
//	AddEdge(id1, id2, data)     // O(1): implicit endpoints, replaces prior payload
//	Link(id1, id2)              // O(1): AddEdge with zero payload
//	RemoveEdge(id1, id2)        // O(1)
//	RemoveNode(id)              // O(deg(id))
//	Node(id) / Edge(id1, id2)   // O(1): mutable payload pointers
//	Degree(id)                  // O(1): 0 for a missing node
//	Neighbors(id)               // O(deg): snapshot
//	NeighborView(id)            // O(1): lazy iter.Seq, invalid after mutating id
//	RandomNeighbor(id, r)       // O(deg)
//	Nodes() / Edges()           // O(V) / O(V+E), Edges canonicalized First <= Second
//
// Conversions:
//
//	ToDirected(u)    // each undirected edge becomes two arcs with copied payloads
//	ToUndirected(d)  // both arcs of a pair collapse; the arc from the smaller key wins
//	Clone()          // same variant, payloads copied by value
//
// Iteration order of Nodes, Neighbors and the views is Go map order and is not
// stable across calls. Use SortedNodes for deterministic enumeration.
//
// Concurrency: none. Instances are single-threaded; callers serialize access.
//
// Errors:
//
//	ErrNodeNotFound          - missing node (NodeNotFoundError carries the key)
//	ErrEdgeNotFound          - missing edge (EdgeNotFoundError carries endpoints)
//	ErrNoNeighbors           - random pick on a node of degree 0
//	ErrInvalidConfiguration  - out-of-range generator parameter (used by builder)
package core
