package server

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// blankImage builds a white w×h image at 300 dpi.
func blankImage(t *testing.T, w, h int) *raster.Image {
	t.Helper()
	m, err := raster.New(w, h, 300)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	m.Fill(color.NRGBA{255, 255, 255, 255})
	return m
}

// documentImage builds a white canvas with a centered black rectangle.
func documentImage(t *testing.T, w, h, docW, docH int) *raster.Image {
	t.Helper()
	m := blankImage(t, w, h)
	black := color.NRGBA{0, 0, 0, 255}
	x0, y0 := (w-docW)/2, (h-docH)/2
	for y := y0; y < y0+docH; y++ {
		for x := x0; x < x0+docW; x++ {
			m.SetNRGBA(x, y, black)
		}
	}
	return m
}

// writeTestPNG writes the image to a temp file and returns its path.
func writeTestPNG(t *testing.T, m *raster.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	if err := m.WritePNG(path); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	return path
}

func marshalArgs(t *testing.T, args map[string]interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args failed: %v", err)
	}
	return b
}

func TestExecuteTool_ImageInfo(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, blankImage(t, 40, 25))

	result, err := s.executeTool("image_info", marshalArgs(t, map[string]interface{}{
		"path": path,
		"dpi":  150,
	}))
	if err != nil {
		t.Fatalf("image_info failed: %v", err)
	}
	img, ok := result.(*raster.Image)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if img.Width != 40 || img.Height != 25 {
		t.Errorf("dimensions: got %dx%d, want 40x25", img.Width, img.Height)
	}
	if img.DPI != 150 {
		t.Errorf("DPI: got %v, want declared 150", img.DPI)
	}
}

func TestExecuteTool_ImageInfo_MissingFile(t *testing.T) {
	s := newTestServer()
	_, err := s.executeTool("image_info", marshalArgs(t, map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "missing.png"),
	}))
	if err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestExecuteTool_EstimateSkew(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, documentImage(t, 400, 300, 200, 100))

	result, err := s.executeTool("estimate_skew", marshalArgs(t, map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		t.Fatalf("estimate_skew failed: %v", err)
	}

	b, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result failed: %v", err)
	}
	var skew struct {
		AngleDegrees float64 `json:"angle_degrees"`
		Votes        int     `json:"votes"`
		Detected     bool    `json:"detected"`
	}
	if err := json.Unmarshal(b, &skew); err != nil {
		t.Fatalf("unmarshal result failed: %v", err)
	}
	if !skew.Detected {
		t.Fatal("level document: skew not detected")
	}
	if skew.AngleDegrees > 0.5 || skew.AngleDegrees < -0.5 {
		t.Errorf("level document: estimated %v, want about 0", skew.AngleDegrees)
	}
}

func TestExecuteTool_FindCropRegion(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, documentImage(t, 200, 160, 100, 60))

	result, err := s.executeTool("find_crop_region", marshalArgs(t, map[string]interface{}{
		"path":    path,
		"padding": 0,
	}))
	if err != nil {
		t.Fatalf("find_crop_region failed: %v", err)
	}
	crop, ok := result.(*cropRegionResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}

	want := raster.Region{X: 50, Y: 50, Width: 100, Height: 60}
	if crop.Region != want {
		t.Errorf("region: got %+v, want %+v", crop.Region, want)
	}
	if crop.Padded != want {
		t.Errorf("padded with 0: got %+v, want %+v", crop.Padded, want)
	}
	// Unspecified threshold falls back to the default.
	if crop.Threshold != 0.5 {
		t.Errorf("threshold: got %v, want default 0.5", crop.Threshold)
	}
	if crop.Padding != 0 {
		t.Errorf("padding: got %d, want explicit 0", crop.Padding)
	}
}

func TestExecuteTool_FindCropRegion_DefaultPadding(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, documentImage(t, 200, 160, 100, 60))

	result, err := s.executeTool("find_crop_region", marshalArgs(t, map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		t.Fatalf("find_crop_region failed: %v", err)
	}
	crop := result.(*cropRegionResult)
	if crop.Padding != 10 {
		t.Errorf("padding: got %d, want default 10", crop.Padding)
	}
	want := raster.Region{X: 40, Y: 40, Width: 120, Height: 80}
	if crop.Padded != want {
		t.Errorf("padded region: got %+v, want %+v", crop.Padded, want)
	}
}

func TestExecuteTool_RotateImage(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, blankImage(t, 80, 50))
	outPath := filepath.Join(t.TempDir(), "rotated.png")

	result, err := s.executeTool("rotate_image", marshalArgs(t, map[string]interface{}{
		"path":        path,
		"degrees":     90,
		"output_path": outPath,
	}))
	if err != nil {
		t.Fatalf("rotate_image failed: %v", err)
	}
	rot, ok := result.(*rotateImageResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if rot.Width != 50 || rot.Height != 80 {
		t.Errorf("rotated size: got %dx%d, want 50x80", rot.Width, rot.Height)
	}
	if rot.OutputPath != outPath {
		t.Errorf("output path: got %q, want %q", rot.OutputPath, outPath)
	}

	written, err := raster.Load(outPath, 300)
	if err != nil {
		t.Fatalf("output PNG unreadable: %v", err)
	}
	if written.Width != 50 || written.Height != 80 {
		t.Errorf("written size: got %dx%d, want 50x80", written.Width, written.Height)
	}
}

func TestExecuteTool_RotateImage_RequiresOutputPath(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, blankImage(t, 10, 10))

	_, err := s.executeTool("rotate_image", marshalArgs(t, map[string]interface{}{
		"path":    path,
		"degrees": 90,
	}))
	if err == nil {
		t.Fatal("missing output_path should fail")
	}
}

func TestExecuteTool_RotateImage_BadBackground(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, blankImage(t, 10, 10))

	_, err := s.executeTool("rotate_image", marshalArgs(t, map[string]interface{}{
		"path":        path,
		"degrees":     45,
		"background":  "#XYZ",
		"output_path": filepath.Join(t.TempDir(), "out.png"),
	}))
	if err == nil {
		t.Fatal("invalid background color should fail")
	}
}

func TestExecuteTool_ProcessDocument(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, documentImage(t, 400, 300, 200, 100))
	outPath := filepath.Join(t.TempDir(), "processed.png")

	result, err := s.executeTool("process_document", marshalArgs(t, map[string]interface{}{
		"path":        path,
		"threshold":   0.5,
		"padding":     5,
		"output_path": outPath,
	}))
	if err != nil {
		t.Fatalf("process_document failed: %v", err)
	}
	doc, ok := result.(*processDocumentResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}

	// A level 200×100 document plus 5px padding on each side, with a small
	// tolerance for the fringe a near-zero deskew rotation can introduce.
	if doc.Width < 206 || doc.Width > 214 || doc.Height < 106 || doc.Height > 114 {
		t.Errorf("output size: got %dx%d, want about 210x110", doc.Width, doc.Height)
	}
	if doc.OutputPath != outPath {
		t.Errorf("output path: got %q, want %q", doc.OutputPath, outPath)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("output PNG not written: %v", err)
	}
	written, err := raster.Load(outPath, 300)
	if err != nil {
		t.Fatalf("output PNG unreadable: %v", err)
	}
	if written.Width != doc.Width || written.Height != doc.Height {
		t.Errorf("written size %dx%d differs from reported %dx%d",
			written.Width, written.Height, doc.Width, doc.Height)
	}
}

func TestExecuteTool_ProcessDocument_RequiresOutputPath(t *testing.T) {
	s := newTestServer()
	path := writeTestPNG(t, blankImage(t, 10, 10))

	_, err := s.executeTool("process_document", marshalArgs(t, map[string]interface{}{
		"path": path,
	}))
	if err == nil {
		t.Fatal("missing output_path should fail")
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := newTestServer()
	if _, err := s.executeTool("no_such_tool", json.RawMessage(`{}`)); err == nil {
		t.Fatal("unknown tool should fail")
	}
}
