// Package server exposes target location over MCP (Model Context Protocol).
//
// The server speaks JSON-RPC 2.0 over stdio so that an assistant can ask
// where the coloured marker is in a camera frame, look at the mask it was
// found from, and inspect the pixels around it.
//
// # Protocol
//
// One request per line on stdin, one response per line on stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Frame information:
//   - image_load: Load a frame and report its metadata
//   - image_dimensions: Get width and height
//
// Regions and colors:
//   - image_crop: Extract a rectangular region
//   - image_crop_sector: Extract one of the nine sectors around the centre zone
//   - image_sample_color: Sample one or more pixels and report whether each
//     is target colored
//
// Target location:
//   - target_locate: Sector, size, centroid and offset from centre
//   - target_mask: The membership mask before or after cleaning
//   - target_overlay: The frame with mask, centre zone and centroid drawn on
//   - target_crop: The frame cropped to the located target
//   - target_config: The analysis settings in effect
//
// Every target_* tool accepts hue_min and hue_max to try a different hue
// window for one call, and reload to re-read a file the camera has
// rewritten. A frame without a target is a normal result with sector
// "error", not a tool failure.
//
// # Image Caching
//
// Images are cached by path for the lifetime of the server. Pass reload to
// drop the cached copy first.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data. Malformed tools/call parameters
// get -32602 and unknown methods -32601.
//
// # Usage
//
//	srv := server.New(cfg, logger, version)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal(err)
//	}
package server
