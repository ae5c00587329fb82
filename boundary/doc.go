// Package boundary walks the edge of one labeled region into a closed path
// of grid-corner points.
//
// Coordinates are grid corners: cell (x,y) spans (x,y)-(x+1,y+1) and y grows
// downward. A Path lists one point per unit edge, with the closing edge from
// the last point back to the first left implicit.
//
// The walk keeps the region on its right-hand side, so outer boundaries come
// out clockwise on screen (positive SignedArea2 in grid coordinates). At each
// corner it tries to turn right, then to go straight, then to turn left. Ink
// regions are 8-connected, so at a diagonal pinch they prefer the left turn
// instead and a diagonal stroke stays one contour.
//
// Only the outer boundary of a region is returned. Boundary edges that remain
// after the walk must close into inner loops (around holes or nested regions);
// anything else means the region is not one connected piece and Trace reports
// a *TopologyError.
//
// Complexity: O(n) expected time and memory for a region of n cells, plus
// O(k) per inner loop to find its start among the k edges left over.
package boundary
