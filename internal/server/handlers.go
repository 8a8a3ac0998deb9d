package server

import (
	"encoding/json"
	"image"

	"github.com/pkg/errors"

	"github.com/ironsheep/target-follow/internal/config"
	"github.com/ironsheep/target-follow/internal/imaging"
	"github.com/ironsheep/target-follow/internal/target"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "target_locate", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// A frame without a target is a normal result, not an error.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warnw("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Regions and colors
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_sector":
		return s.handleImageCropSector(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Target location
	case "target_locate":
		return s.handleTargetLocate(args)
	case "target_mask":
		return s.handleTargetMask(args)
	case "target_overlay":
		return s.handleTargetOverlay(args)
	case "target_crop":
		return s.handleTargetCrop(args)
	case "target_config":
		return s.cfg, nil

	default:
		return nil, errors.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	return errors.Wrap(json.Unmarshal(args, v), "invalid arguments")
}

// === Frame information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Regions and colors ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, _, err := s.frame(a.Path, false)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type imageCropSectorArgs struct {
	Path   string  `json:"path"`
	Sector string  `json:"sector"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleImageCropSector(args json.RawMessage) (interface{}, error) {
	var a imageCropSectorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	sector := target.Sector(a.Sector)
	if !sector.Valid() {
		return nil, errors.Errorf("unknown sector %q", a.Sector)
	}
	img, _, err := s.frame(a.Path, false)
	if err != nil {
		return nil, err
	}
	return imaging.CropSector(img, sector, s.analyzer.Deviation(), a.Scale)
}

type imageSampleColorArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points,omitempty"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, _, err := s.frame(a.Path, false)
	if err != nil {
		return nil, err
	}

	classifier := s.analyzer.Classifier()
	if len(a.Points) == 0 {
		return imaging.SampleColor(img, a.X, a.Y, classifier)
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points, classifier)
}

// === Target location ===

// targetArgs are shared by every target_* tool. HueMin and HueMax override
// the configured hue window for one call.
type targetArgs struct {
	Path   string   `json:"path"`
	Reload bool     `json:"reload"`
	HueMin *float64 `json:"hue_min,omitempty"`
	HueMax *float64 `json:"hue_max,omitempty"`
}

// LocateResult is the target_locate response.
type LocateResult struct {
	Path string `json:"path"`
	target.Result
	Offset *imaging.OffsetResult `json:"offset,omitempty"`
}

// frame loads path as a frame at the configured working size.
func (s *Server) frame(path string, reload bool) (image.Image, target.Frame, error) {
	if path == "" {
		return nil, target.Frame{}, errors.New("path is required")
	}
	if reload {
		s.cache.Evict(path)
	}
	img, frame, err := imaging.LoadFrame(s.cache, path, s.cfg.WorkingSize())
	if err != nil {
		return nil, target.Frame{}, err
	}
	s.logger.Debugw("frame loaded", "path", path, "width", frame.Width, "height", frame.Height, "cached", s.cache.Len())
	return img, frame, nil
}

// analyzerFor returns the configured analyzer, or one with the hue window
// replaced when the call overrides it.
func (s *Server) analyzerFor(a targetArgs) (*target.Analyzer, error) {
	if a.HueMin == nil && a.HueMax == nil {
		return s.analyzer, nil
	}
	cfg := *s.cfg
	cfg.Classifier = config.ClassifierHue
	if a.HueMin != nil {
		cfg.HueMin = *a.HueMin
	}
	if a.HueMax != nil {
		cfg.HueMax = *a.HueMax
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Analyzer(), nil
}

// inspect loads and analyses the frame named by raw arguments.
func (s *Server) inspect(args json.RawMessage, extra interface{}) (image.Image, *target.Analysis, error) {
	var a targetArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, nil, err
	}
	if extra != nil {
		if err := decodeArgs(args, extra); err != nil {
			return nil, nil, err
		}
	}

	analyzer, err := s.analyzerFor(a)
	if err != nil {
		return nil, nil, err
	}
	img, frame, err := s.frame(a.Path, a.Reload)
	if err != nil {
		return nil, nil, err
	}
	an, err := analyzer.Inspect(frame)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "analysing %s", a.Path)
	}

	s.logger.Debugw("frame analysed",
		"path", a.Path,
		"sector", an.Sector,
		"size", an.Size,
		"centroid", an.Centroid,
		"samples", an.Samples,
	)
	return img, an, nil
}

func (s *Server) handleTargetLocate(args json.RawMessage) (interface{}, error) {
	var a targetArgs
	_, an, err := s.inspect(args, &a)
	if err != nil {
		return nil, err
	}

	res := &LocateResult{Path: a.Path, Result: an.Result}
	if an.Found {
		off := imaging.CentreOffset(an.Width, an.Height, an.Centroid)
		res.Offset = &off
	}
	return res, nil
}

type targetMaskArgs struct {
	Raw bool `json:"raw"`
}

func (s *Server) handleTargetMask(args json.RawMessage) (interface{}, error) {
	var a targetMaskArgs
	_, an, err := s.inspect(args, &a)
	if err != nil {
		return nil, err
	}
	if a.Raw {
		return imaging.EncodeMask(an.Raw)
	}
	return imaging.EncodeMask(an.Cleaned)
}

type targetOverlayArgs struct {
	BoundaryColor string `json:"boundary_color"`
	MaskColor     string `json:"mask_color"`
	MarkerColor   string `json:"marker_color"`
	HideMask      bool   `json:"hide_mask"`
	ShowLabel     bool   `json:"show_label"`
}

func (s *Server) handleTargetOverlay(args json.RawMessage) (interface{}, error) {
	var a targetOverlayArgs
	img, an, err := s.inspect(args, &a)
	if err != nil {
		return nil, err
	}
	return imaging.Overlay(img, an, imaging.OverlayOptions{
		BoundaryColor: a.BoundaryColor,
		MaskColor:     a.MaskColor,
		MarkerColor:   a.MarkerColor,
		HideMask:      a.HideMask,
		ShowLabel:     a.ShowLabel,
	})
}

type targetCropArgs struct {
	Margin int     `json:"margin"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleTargetCrop(args json.RawMessage) (interface{}, error) {
	var a targetCropArgs
	img, an, err := s.inspect(args, &a)
	if err != nil {
		return nil, err
	}
	if !an.Found {
		return nil, errors.New("no target in frame")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return imaging.CropTarget(img, an.Blob, s.analyzer.TrimOffset(), a.Margin, a.Scale)
}
