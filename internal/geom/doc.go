// Package geom computes Delaunay triangulations, their Voronoi duals, and
// convex hulls of 2-D point sets.
//
// Triangulation and hull construction are delegated to fogleman/delaunay;
// this package adds the Voronoi diagram derived from the triangulation:
//
//   - every triangle contributes its circumcenter as a Voronoi vertex
//   - every shared triangle edge contributes a finite ridge between the two
//     adjacent circumcenters
//   - every hull edge contributes an unbounded ridge, encoded with the
//     sentinel vertex index [Unbounded] plus an outward unit direction
//
// Results are derived, read-only views: vertex coordinates plus index lists
// referencing them.
package geom
