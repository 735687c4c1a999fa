// Package pillchase tracks pill clusters in a maze and steers an agent toward
// the most rewarding one, one tick at a time.
//
// What is pillchase?
//
//	Two pills are adjacent when a straight corridor of at most
//	cluster.MaxSeparation empty nodes joins them. The connected components of
//	that relation are the clusters. They are built once per level and then
//	split incrementally as pills are eaten; nothing is ever recomputed from
//	scratch.
//
// Packages:
//
//	maze/    ASCII layouts, node numbering, path distances, collectible state
//	cluster/ pill adjacency, Component (split on removal), Registry
//	pursuit/ Selector: per-tick target choice by size/(alpha×distance)
//	config/  YAML settings
//	sim/     headless episode driver
//	view/    tcell rendering with cluster overlay colours
//	cmd/pillchase CLI (run, clusters)
//
// Complexity:
//
//	Pill adjacency is O(4·MaxSeparation) per node. Removing a pill touches only
//	the component that held it: O(k·MaxSeparation·log k) for a component of
//	k members. Choosing a target costs one nearest-member scan per cluster.
//
// Quick start:
//
//	g := maze.MustParse(maze.Builtin[0])
//	s := pursuit.New()
//	res, err := sim.Run(g, s, sim.WithLevels(maze.Builtin[1:]...))
package pillchase
