// Package gridpath is a step-driven A* pathfinder over 2-D grids with
// blocked cells, built to be watched while it works.
//
// 🚀 What is gridpath?
//
//	A small engine plus the plumbing to run it:
//		• gridgraph: the cell arena, neighbor rules, random walls, components
//		• astar: resumable A* with a per-tick step budget and path marking
//		• internal/driver: fixed-rate tick loop with smoothed ticks-per-second
//		• internal/observer: websocket feed of frames for live viewers
//		• internal/snapshot: zstd-compressed run snapshots
//		• internal/runindex: SQLite history of finished runs
//		• cmd/gridpath: the CLI tying them together from a YAML config
//
// ✨ Why a budgeted search?
//
//   - One Tick can expand a handful of cells, so a renderer can draw the
//     frontier growing between frames.
//   - A budget of 0 collapses the whole search into one call.
//   - The open set and predecessor map live in a Traversal that survives
//     between ticks.
//
// Quick start:
//
//	g, _ := gridgraph.NewGrid(50, 50, gridgraph.GridOptions{
//	    Walls: gridgraph.RandomWalls(1, 0.3),
//	})
//	s, _ := astar.NewSearch(g, g.Index(0, 0), g.Index(49, 49))
//	s.Run()
//	fmt.Println(g)
package gridpath
