// Package pursuit picks, once per tick, which pill cluster the agent should
// chase and the move that heads there.
//
// A Selector owns the cluster registry of the current episode and the last
// level it saw. Each call to Decide:
//
//  1. rebuilds the registry from the game's active pills and power pills on
//     the first call and whenever the level number changes;
//  2. removes the agent's node from the registry when it holds a collectible;
//  3. asks the registry for the nearest node of every cluster;
//  4. scores each as size / (alpha · distance) and keeps the first strict
//     maximum above zero;
//  5. resolves the move toward that node through the game's path oracle.
//
// Invariant violations (an empty cluster, or no positive score while clusters
// remain) panic: a silently degraded move would corrupt the decision loop.
//
// Options:
//
//   - WithAlpha(a)          distance weight, default 1.0.
//   - WithMaxSeparation(n)  pill-adjacency hop bound, default cluster.MaxSeparation.
//   - WithDebugDraw(on)     paint clusters onto the game overlay every tick.
//   - WithLogger(l)         zap logger for rebuild, split and target events.
//   - WithMetrics(m)        Prometheus counters and gauges.
package pursuit
