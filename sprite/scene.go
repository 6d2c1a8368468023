package sprite

import (
	"image"
	"log"

	"github.com/OpticalFlyer/spritekit/asset"
	"github.com/OpticalFlyer/spritekit/palette"
	"github.com/OpticalFlyer/spritekit/scene"
)

// FromScene builds the sprites for spawned scene bodies. Image entries load
// through l and fall back to a filled shape when the image is missing.
func FromScene(spawned []scene.Spawned, l *asset.Loader) Group {
	group := make(Group, 0, len(spawned))
	pictures := make(map[string]*Picture)

	// Failed loads are cached as nil. Entries without a fill color have
	// nothing else to show and get a blank image instead.
	picture := func(ref string, w, h float64, blank bool) *Picture {
		if pic, ok := pictures[ref]; ok {
			return pic
		}
		var img image.Image
		if blank {
			img = l.ImageOrBlank(ref, int(w), int(h))
		} else {
			var err error
			img, err = l.Image(ref, int(w), int(h))
			if err != nil {
				log.Printf("Error loading image %s, drawing a shape instead: %v", ref, err)
				pictures[ref] = nil
				return nil
			}
		}
		pic := NewPicture(img)
		pictures[ref] = pic
		return pic
	}

	for _, s := range spawned {
		e := s.Entry

		var look Drawable
		if e.Image != "" {
			w, h := s.Body.Size()
			if pic := picture(e.Image, w, h, e.Fill == ""); pic != nil {
				look = pic
			}
		}
		if look == nil {
			fill, err := palette.Parse(e.Fill)
			if err != nil {
				fill = palette.White
			}
			switch e.Shape {
			case "text":
				size := e.FontSize
				if size <= 0 {
					size = scene.DefaultFontSize
				}
				t := NewText(l.FontOrFallback(e.Font), size, fill)
				t.Set(s.Body, e.Text)
				look = t
			case "circle":
				look = &Disc{Color: fill}
			default:
				look = &Fill{Color: fill}
			}
		}

		sp := New(s.Body, look)
		sp.Name = e.Name
		group = append(group, sp)
	}
	return group
}
