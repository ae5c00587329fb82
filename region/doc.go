// Package region labels the connected components of a pixelgrid.Grid.
//
// What:
//
//   - Ink cells are grouped with 8-connectivity, so a one-pixel diagonal
//     stroke stays a single region.
//   - Background cells reachable from the grid border with 4-connectivity
//     form the single exterior region.
//   - Every other 4-connected background component is a hole.
//
// Labels:
//
//   - 1, 2, 3, ...   ink regions, in row-major discovery order.
//   - -1             the exterior (Exterior).
//   - -2, -3, ...    holes, in row-major discovery order.
//
// Zero is only used while labeling and never appears in a Labeling.
//
// Complexity:
//
//   - Compute: O(W×H×d) time (d = 4 or 8), O(W×H) memory.
//   - Cells, Bounds: O(W×H).
package region
