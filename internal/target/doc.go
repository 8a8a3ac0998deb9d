// Package target locates a colour-coded target in a single camera frame.
//
// A frame goes through a fixed pipeline:
//
//  1. Rasterize: unpack every ARGB word into a Sample and classify it,
//     producing a Samples grid and a parallel membership Grid.
//  2. Clean: run a Cleaner over the membership grid to drop stray positives.
//  3. Aggregate: collect the samples whose membership bit survived into a Blob.
//  4. Classify: compare the blob's per-axis median centroid against the
//     Boundary derived from the frame size and report one of nine sectors.
//
// The Analyzer wires these steps together and returns a Result holding the
// sector label and the trimmed blob area.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. Both the
// Samples grid and the membership Grid are indexed [x][y], so the first index
// runs across the frame width and the second down its height.
//
// # Failure Handling
//
// A frame whose pixel count does not match its declared dimensions fails with
// a *DecodeError and should be skipped by the caller. A frame without any
// target pixel is not a failure: Analyze reports SectorError with size 0.
//
// # Thread Safety
//
// Every call to Analyze allocates its own grids and blob and keeps nothing
// between calls. An Analyzer may be shared by goroutines working on
// different frames.
package target
