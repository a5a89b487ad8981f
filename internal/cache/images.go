package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache provides disk + memory caching for panel artwork. Downloads
// run in the background; the frame loop polls Get until the texture shows
// up.
type ImageCache struct {
	cacheDir string
	maxWidth int

	memory  sync.Map // url -> *ebiten.Image
	decoded sync.Map // url -> image.Image, waiting for upload on the frame loop
	loading sync.Map // url -> struct{}
	failed  sync.Map // url -> error
	sem     chan struct{}

	// newTexture uploads a decoded image; replaced in tests.
	newTexture func(image.Image) *ebiten.Image
}

// NewImageCache creates a cache under cacheDir. Images wider than maxWidth
// are scaled down before they are stored in memory; 0 keeps them as is.
func NewImageCache(cacheDir string, maxWidth int) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir:   cacheDir,
		maxWidth:   maxWidth,
		sem:        make(chan struct{}, 6),
		newTexture: ebiten.NewImageFromImage,
	}, nil
}

// Get returns the texture for url if it is ready, or nil. Must be called
// from the frame loop: finished downloads are uploaded to the GPU here.
func (ic *ImageCache) Get(url string) *ebiten.Image {
	if v, ok := ic.memory.Load(url); ok {
		return v.(*ebiten.Image)
	}
	if v, ok := ic.decoded.LoadAndDelete(url); ok {
		tex := ic.newTexture(v.(image.Image))
		ic.memory.Store(url, tex)
		return tex
	}
	return nil
}

// Request starts a background download of url unless it is cached, in
// flight or already failed.
func (ic *ImageCache) Request(url string) {
	if url == "" {
		return
	}
	if _, ok := ic.memory.Load(url); ok {
		return
	}
	if _, ok := ic.failed.Load(url); ok {
		return
	}
	if _, loaded := ic.loading.LoadOrStore(url, struct{}{}); loaded {
		return
	}

	go func() {
		defer ic.loading.Delete(url)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.loadImage(url)
		if err != nil {
			log.Printf("Artwork %s: %v", url, err)
			ic.failed.Store(url, err)
			return
		}
		ic.decoded.Store(url, img)
	}()
}

// Err reports why url failed to load, if it did.
func (ic *ImageCache) Err(url string) error {
	if v, ok := ic.failed.Load(url); ok {
		return v.(error)
	}
	return nil
}

func (ic *ImageCache) loadImage(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return ic.fit(img), nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("decode: %w", err)
	}

	return ic.fit(img), nil
}

// fit scales img down to maxWidth keeping the aspect ratio.
func (ic *ImageCache) fit(img image.Image) image.Image {
	b := img.Bounds()
	if ic.maxWidth <= 0 || b.Dx() <= ic.maxWidth {
		return img
	}
	h := b.Dy() * ic.maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, ic.maxWidth, max(h, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
