// Package asset resolves image and font references to decoded data. A
// reference is a file path or an http(s) URL. Failures never stop a demo:
// callers get a fallback (a blank image or the built-in monospace font) and
// the error is logged.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrNotFound is returned when a referenced asset does not exist
var ErrNotFound = errors.New("asset not found")

// UserAgent is sent with HTTP requests
const UserAgent = "SpriteKit 1.0"

type imageKey struct {
	ref  string
	w, h int
}

// Loader loads and caches assets. Relative paths are resolved against Root.
// A Loader is safe for concurrent use.
type Loader struct {
	Root   string
	Client *http.Client

	cacheMu sync.RWMutex
	images  map[imageKey]image.Image
	fonts   map[string][]byte
}

// NewLoader creates a loader for files under root
func NewLoader(root string) *Loader {
	return &Loader{
		Root:   root,
		Client: &http.Client{Timeout: 10 * time.Second},
		images: make(map[imageKey]image.Image),
		fonts:  make(map[string][]byte),
	}
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Resolve returns the file path for ref, relative to Root unless absolute
func (l *Loader) Resolve(ref string) string {
	if filepath.IsAbs(ref) || l.Root == "" {
		return ref
	}
	return filepath.Join(l.Root, ref)
}

// read returns the raw bytes for ref
func (l *Loader) read(ref string) ([]byte, error) {
	if isURL(ref) {
		return l.fetch(ref)
	}

	data, err := os.ReadFile(l.Resolve(ref))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ref, err)
	}
	return data, nil
}

func (l *Loader) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s failed: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s failed: %w", url, err)
	}
	return data, nil
}

// Image decodes the image at ref. When width and height are both positive
// the image is scaled to that size with a Catmull-Rom filter.
func (l *Loader) Image(ref string, width, height int) (image.Image, error) {
	key := imageKey{ref: ref, w: width, h: height}
	if width <= 0 || height <= 0 {
		key.w, key.h = 0, 0
	}

	l.cacheMu.RLock()
	img, ok := l.images[key]
	l.cacheMu.RUnlock()
	if ok {
		return img, nil
	}

	data, err := l.read(ref)
	if err != nil {
		return nil, err
	}
	img, _, err = image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image %s failed: %w", ref, err)
	}
	if key.w > 0 {
		img = Scale(img, key.w, key.h)
	}

	l.cacheMu.Lock()
	l.images[key] = img
	l.cacheMu.Unlock()
	return img, nil
}

// ImageOrBlank is like Image but returns a transparent image of the
// requested size (at least 1x1) when loading fails
func (l *Loader) ImageOrBlank(ref string, width, height int) image.Image {
	img, err := l.Image(ref, width, height)
	if err == nil {
		return img
	}
	log.Printf("Error loading image %s, using blank surface: %v", ref, err)
	return Blank(width, height)
}

// Blank returns a transparent image of the given size, at least 1x1
func Blank(width, height int) image.Image {
	return image.NewNRGBA(image.Rect(0, 0, max(1, width), max(1, height)))
}

// Scale resizes img to width x height
func Scale(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
