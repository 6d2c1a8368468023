package asset

import (
	"log"

	"golang.org/x/image/font/gofont/gomono"
)

// FallbackFont is the TrueType data used when a font cannot be loaded
var FallbackFont = gomono.TTF

// Font returns the raw font data at ref. An empty ref selects the fallback
// font without error.
func (l *Loader) Font(ref string) ([]byte, error) {
	if ref == "" {
		return FallbackFont, nil
	}

	l.cacheMu.RLock()
	data, ok := l.fonts[ref]
	l.cacheMu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := l.read(ref)
	if err != nil {
		return nil, err
	}

	l.cacheMu.Lock()
	l.fonts[ref] = data
	l.cacheMu.Unlock()
	return data, nil
}

// FontOrFallback is like Font but substitutes the built-in monospace font
// when ref cannot be read
func (l *Loader) FontOrFallback(ref string) []byte {
	data, err := l.Font(ref)
	if err != nil {
		log.Printf("Error loading font %s, using monospace fallback: %v", ref, err)
		return FallbackFont
	}
	return data
}
