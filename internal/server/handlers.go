package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/scan-align-mcp/internal/detection"
	"github.com/ironsheep/scan-align-mcp/internal/pipeline"
	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "estimate_skew").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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
	case "image_info":
		return s.handleImageInfo(args)
	case "estimate_skew":
		return s.handleEstimateSkew(args)
	case "find_crop_region":
		return s.handleFindCropRegion(args)
	case "rotate_image":
		return s.handleRotateImage(args)
	case "process_document":
		return s.handleProcessDocument(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information ===

type imageInfoArgs struct {
	Path string  `json:"path"`
	DPI  float64 `json:"dpi"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.Load(a.Path, a.DPI)
}

// === Skew Estimation ===

func (s *Server) handleEstimateSkew(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path, a.DPI)
	if err != nil {
		return nil, err
	}
	return detection.EstimateSkew(img), nil
}

// === Crop Region Detection ===

type findCropRegionArgs struct {
	Path      string   `json:"path"`
	DPI       float64  `json:"dpi"`
	Threshold *float64 `json:"threshold,omitempty"`
	Padding   *int     `json:"padding,omitempty"`
}

// cropRegionResult reports both the raw detected rectangle and the padded
// one actually used for cropping.
type cropRegionResult struct {
	Region    raster.Region `json:"region"`
	Padded    raster.Region `json:"padded"`
	Threshold float64       `json:"threshold"`
	Padding   int           `json:"padding"`
}

func (s *Server) handleFindCropRegion(args json.RawMessage) (interface{}, error) {
	var a findCropRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	defaults := pipeline.DefaultOptions()
	threshold := defaults.Threshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	padding := defaults.Padding
	if a.Padding != nil {
		padding = *a.Padding
	}

	img, err := s.cache.Load(a.Path, a.DPI)
	if err != nil {
		return nil, err
	}
	region, err := detection.FindCropRegion(img, threshold)
	if err != nil {
		return nil, err
	}
	return &cropRegionResult{
		Region:    region,
		Padded:    region.Pad(padding, img.Width, img.Height),
		Threshold: threshold,
		Padding:   padding,
	}, nil
}

// === Rotation ===

type rotateImageArgs struct {
	Path       string  `json:"path"`
	DPI        float64 `json:"dpi"`
	Degrees    float64 `json:"degrees"`
	Background string  `json:"background"`
	OutputPath string  `json:"output_path"`
}

type rotateImageResult struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	DPI        float64 `json:"dpi"`
	OutputPath string  `json:"output_path"`
}

func (s *Server) handleRotateImage(args json.RawMessage) (interface{}, error) {
	var a rotateImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}
	bg, err := raster.ParseBackground(a.Background)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path, a.DPI)
	if err != nil {
		return nil, err
	}
	rotated, err := raster.Rotate(img, a.Degrees, bg)
	if err != nil {
		return nil, err
	}
	if err := rotated.WritePNG(a.OutputPath); err != nil {
		return nil, err
	}
	return &rotateImageResult{
		Width:      rotated.Width,
		Height:     rotated.Height,
		DPI:        rotated.DPI,
		OutputPath: a.OutputPath,
	}, nil
}

// === Full Pipeline ===

type processDocumentArgs struct {
	Path                  string   `json:"path"`
	DPI                   float64  `json:"dpi"`
	Threshold             *float64 `json:"threshold,omitempty"`
	Padding               *int     `json:"padding,omitempty"`
	ManualRotationDegrees float64  `json:"manual_rotation_degrees"`
	OutputPath            string   `json:"output_path"`
}

type processDocumentResult struct {
	pipeline.Result
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	DPI        float64 `json:"dpi"`
	OutputPath string  `json:"output_path"`
}

func (s *Server) handleProcessDocument(args json.RawMessage) (interface{}, error) {
	var a processDocumentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}

	opts := pipeline.DefaultOptions()
	opts.ManualRotationDegrees = a.ManualRotationDegrees
	if a.Threshold != nil {
		opts.Threshold = *a.Threshold
	}
	if a.Padding != nil {
		opts.Padding = *a.Padding
	}

	img, err := s.cache.Load(a.Path, a.DPI)
	if err != nil {
		return nil, err
	}
	result, err := s.proc.Process(img, opts)
	if err != nil {
		return nil, err
	}
	if err := result.Image.WritePNG(a.OutputPath); err != nil {
		return nil, err
	}
	return &processDocumentResult{
		Result:     *result,
		Width:      result.Image.Width,
		Height:     result.Image.Height,
		DPI:        result.Image.DPI,
		OutputPath: a.OutputPath,
	}, nil
}
