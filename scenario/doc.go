// Package scenario loads search scenarios from HCL files and renders
// finished searches as text.
//
// A scenario names a board, its walls and the algorithm to run:
//
//	name      = "wall-column"
//	algorithm = "astar"
//
//	grid {
//	  rows    = 5
//	  columns = 5
//	  start   = [0, 0]
//	  finish  = [4, 4]
//	}
//
//	wall "column" {
//	  from = [0, 2]
//	  to   = [3, 2]
//	}
//
//	wall "dots" {
//	  cells = [[1, 4], [2, 4]]
//	}
//
// Coordinates are [row, col] pairs. A wall block covers the inclusive
// rectangle from..to (to defaults to from) plus any listed cells. Instead
// of explicit dimensions the grid block may carry a text layout, in the
// format of grid.Parse:
//
//	grid {
//	  layout = <<-EOT
//	    S.#..
//	    ..#.F
//	  EOT
//	}
//
// The algorithm attribute is optional and defaults to Dijkstra.
package scenario
