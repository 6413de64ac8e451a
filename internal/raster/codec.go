package raster

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"io"
	"os"
	"sync"
)

// Decode reads an encoded PNG, JPEG, or GIF image and converts it into an
// Image with the declared dpi. A dpi of zero or less falls back to
// DefaultDPI.
func Decode(r io.Reader, dpi float64) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(src, dpi)
}

// Load reads an image file from disk. See Decode for supported formats.
func Load(path string, dpi float64) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Decode(f, dpi)
}

// EncodePNG writes the image as PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := png.Encode(w, m.NRGBA()); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// WritePNG writes the image to a PNG file, creating or truncating path.
func (m *Image) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := m.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// Cache provides thread-safe caching of loaded images to avoid redundant
// disk reads when several tool calls operate on the same scan.
//
// Images are keyed by the exact path string used to load them. The declared
// dpi is applied on first load; subsequent loads of the same path return the
// cached image regardless of the dpi argument. Cached entries remain in
// memory until Evict or Clear.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*Image
}

// NewCache creates an empty cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*Image)}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
func (c *Cache) Load(path string, dpi float64) (*Image, error) {
	c.mu.RLock()
	if m, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	c.mu.RUnlock()

	m, err := Load(path, dpi)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = m
	c.mu.Unlock()

	return m, nil
}

// Evict removes a specific image from the cache by its path.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*Image)
	c.mu.Unlock()
}
