package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the common "path" argument schema shared by all tools.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the scanned image file (PNG, JPEG, or GIF)",
	}
}

// dpiProperty is the common optional "dpi" argument schema.
func dpiProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Declared physical resolution in samples per inch. Default 300",
		"default":     300,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_info",
			Description: "Load a scanned image and return its dimensions and resolution.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dpi":  dpiProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "estimate_skew",
			Description: "Estimate the document's tilt angle from its dominant line structure. Returns the angle in degrees (positive = clockwise), the vote count of the winning angle cluster, and whether a consistent skew was detected at all.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dpi":  dpiProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "find_crop_region",
			Description: "Locate the tightest rectangle containing the document by row/column entropy profiling, expanded by the requested padding and clamped to the image bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dpi":  dpiProperty(),
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Normalized-entropy cutoff in [0,1] for boundary detection. Default 0.5",
						"default":     0.5,
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Uniform border in pixels retained beyond the detected boundary. Default 10",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "rotate_image",
			Description: "Rotate an image by an arbitrary angle about its center (positive = clockwise), expanding the canvas to avoid clipping, and write the result as PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dpi":  dpiProperty(),
					"degrees": map[string]interface{}{
						"type":        "number",
						"description": "Rotation angle in degrees, positive = clockwise",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Hex fill color (#RRGGBB) for exposed canvas corners. Default white",
						"default":     "#FFFFFF",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the rotated PNG output",
					},
				},
				"required": []string{"path", "degrees", "output_path"},
			},
		},
		{
			Name:        "process_document",
			Description: "Run the full alignment pipeline: deskew, orientation correction plus optional manual rotation, entropy-based crop with padding. Writes the corrected PNG and reports each stage's findings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dpi":  dpiProperty(),
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Normalized-entropy cutoff in [0,1] for crop boundary detection. Default 0.5",
						"default":     0.5,
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Uniform border in pixels retained beyond the detected boundary. Default 10",
						"default":     10,
					},
					"manual_rotation_degrees": map[string]interface{}{
						"type":        "number",
						"description": "Additional rotation applied together with the orientation correction. Default 0",
						"default":     0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the processed PNG output",
					},
				},
				"required": []string{"path", "output_path"},
			},
		},
	}
}
