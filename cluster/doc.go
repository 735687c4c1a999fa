// Package cluster tracks the connected components ("clusters") of the
// collectible nodes of a maze as those nodes are consumed one by one.
//
// What:
//
//   - PillAdjacent: the gap-tolerant edge relation. Two collectibles are
//     adjacent when a straight walk from one reaches the other through
//     non-collectible nodes, without hitting a dead end, within MaxSeparation hops.
//   - Component: an ordered set of collectible nodes. Remove splits it into
//     offspring components by flood-filling from the removed node's
//     pill-adjacent neighbours.
//   - Registry: the ordered list of live components. It starts as one giant
//     component and is patched incrementally by RemoveElement.
//   - NearestPerCluster: for an origin node, the closest member of every
//     component together with the component size.
//
// Why:
//
//   - Recomputing connectivity from scratch on every game tick is wasteful;
//     a single removal only affects the one component that held the node.
//
// Invariants kept by Registry:
//
//   - Component member sets are pairwise disjoint.
//   - No component is empty.
//
// Complexity:
//
//   - PillAdjacent:        O(4·MaxSeparation).
//   - Component.Remove:    O(k·log k·MaxSeparation), k = component size.
//   - Component.NearestTo: O(k) distance queries.
//   - Registry.RemoveElement: O(C + k·log k·MaxSeparation), C = component count.
//
// Errors:
//
//   - ErrEmptyComponent  NewComponent called with no nodes.
//   - ErrEmptyCluster    NearestTo called on a component without members.
package cluster
