// Package pixelize remaps every pixel of a raster image to a color drawn
// from the geometric tile (square or hexagon) that contains it, producing
// a pixelised mosaic of the same dimensions.
//
// The package is built from three small pieces:
//
//   - A Tiler maps an output coordinate to the source coordinate of the
//     tile center that represents it. SquareTiler does this with integer
//     division; HexTiler runs a nearest-center search over a regular
//     hexagonal lattice.
//   - A sampling strategy decides which color a tile gets: the color at
//     its center pixel, or the mean of every pixel the tile covers.
//   - Pixelize ties the two together, filling a freshly allocated output
//     raster.
//
// # Coordinate System
//
// All coordinates are 0-based with origin at the top-left corner, X
// increasing rightward and Y increasing downward. Tilers operate on
// 0-based coordinates regardless of the source image's Bounds origin;
// Pixelize translates.
//
// # Thread Safety
//
// Tilers are immutable after construction and safe for concurrent use.
// Pixelize itself fans the per-pixel work out across goroutines; callers
// must not mutate the source image while it runs.
package pixelize
