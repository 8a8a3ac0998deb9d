package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the frame image",
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
		"default":     1.0,
	}
}

// targetSchema builds the input schema shared by the target_* tools, plus
// any tool-specific properties.
func targetSchema(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": pathProperty(),
		"reload": map[string]interface{}{
			"type":        "boolean",
			"description": "Re-read the file instead of using the cached frame. Use for files a camera keeps rewriting.",
			"default":     false,
		},
		"hue_min": map[string]interface{}{
			"type":        "number",
			"description": "Override the lower hue bound (inclusive, degrees) for this call",
		},
		"hue_max": map[string]interface{}{
			"type":        "number",
			"description": "Override the upper hue bound (exclusive, degrees) for this call",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   []string{"path"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame information
		{
			Name:        "image_load",
			Description: "Load a frame image and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a frame image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Regions and colors
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from a frame and return it as base64-encoded PNG. Coordinates are in the working resolution, the same space target_locate reports.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": scaleProperty(),
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_crop_sector",
			Description: "Crop one of the nine sectors around the centre zone (above-left, above, above-right, left, centre, right, below-left, below, below-right).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"sector": map[string]interface{}{
						"type": "string",
						"enum": []string{
							"above-left", "above", "above-right",
							"left", "centre", "right",
							"below-left", "below", "below-right",
						},
						"description": "Sector to crop",
					},
					"scale": scaleProperty(),
				},
				"required": []string{"path", "sector"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel, or at several labeled points, with its hue and whether the active classifier counts it as target. Coordinates are in the working resolution. Use this to tune the hue window.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Optional points to sample instead of x,y",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path"},
			},
		},

		// Target location
		{
			Name:        "target_locate",
			Description: "Locate the colored target in a frame: sector relative to the centre zone, size, centroid, offset from the frame centre and sample count. A frame without a target reports sector \"error\".",
			InputSchema: targetSchema(nil),
		},
		{
			Name:        "target_mask",
			Description: "Render the target membership mask as a black and white base64-encoded PNG.",
			InputSchema: targetSchema(map[string]interface{}{
				"raw": map[string]interface{}{
					"type":        "boolean",
					"description": "Render the mask before noise filtering",
					"default":     false,
				},
			}),
		},
		{
			Name:        "target_overlay",
			Description: "Render the frame with the centre zone outline, the target mask tint and a centroid marker as base64-encoded PNG.",
			InputSchema: targetSchema(map[string]interface{}{
				"boundary_color": map[string]interface{}{
					"type":        "string",
					"description": "Centre zone color as hex (#RRGGBB or #RRGGBBAA). Default #FFFF00",
				},
				"mask_color": map[string]interface{}{
					"type":        "string",
					"description": "Mask tint as hex. Default #FF00FF80",
				},
				"marker_color": map[string]interface{}{
					"type":        "string",
					"description": "Centroid marker color as hex. Default #FF0000",
				},
				"hide_mask": map[string]interface{}{
					"type":    "boolean",
					"default": false,
				},
				"show_label": map[string]interface{}{
					"type":        "boolean",
					"description": "Print the centroid coordinates next to the marker",
					"default":     false,
				},
			}),
		},
		{
			Name:        "target_crop",
			Description: "Crop the frame to the located target's extent and return it as base64-encoded PNG. Fails when no target is found.",
			InputSchema: targetSchema(map[string]interface{}{
				"margin": map[string]interface{}{
					"type":        "integer",
					"description": "Pixels to add on each side. Default 0",
					"default":     0,
				},
				"scale": scaleProperty(),
			}),
		},
		{
			Name:        "target_config",
			Description: "Return the active tunables: classifier, hue window, filter passes, trim offset, centre deviation and working size.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
