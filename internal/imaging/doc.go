// Package imaging is the frame source and rendering side of the target
// locator.
//
// It decodes image files, packs them into the ARGB frames the target package
// analyses, and renders what an analysis saw: the cleaned membership mask,
// an overlay with the centre zone and centroid marker, and crops around the
// located target. Colour sampling reports the hue and whether a pixel would
// be classified as target, which is the usual way to tune the hue window.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward
//   - Y increases downward
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// This is the same system the target package uses for centroids and
// boundaries, so results can be drawn back onto the frame directly.
//
// # Frames
//
// FrameFromImage converts any image.Image into a target.Frame. Pixels are
// converted to non-premultiplied 8-bit RGBA first, so a translucent pixel
// keeps its colour and only its alpha byte changes. When a working size is
// given, larger images are scaled down to fit it before conversion.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless and never modify their input images.
//
// # Output Images
//
// Rendered images are returned as base64-encoded PNG so they can travel in a
// JSON tool result. SavePNG writes the same encoding to disk.
package imaging
