package wicket

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas maps named regions of a single packed image to sprites. Pack button
// skins as "<name>_idle", "<name>_hover", "<name>_hit" and resolve all three
// at once with ButtonSprites.
type Atlas struct {
	image   *ebiten.Image
	regions map[string]image.Rectangle
}

// LoadAtlas parses TexturePacker hash-format JSON ({"frames": {...}}) and
// associates the packed image.
func LoadAtlas(jsonData []byte, img *ebiten.Image) (*Atlas, error) {
	var file struct {
		Frames map[string]struct {
			Frame struct {
				X int `json:"x"`
				Y int `json:"y"`
				W int `json:"w"`
				H int `json:"h"`
			} `json:"frame"`
		} `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("wicket: failed to parse atlas JSON: %w", err)
	}
	if len(file.Frames) == 0 {
		return nil, fmt.Errorf("wicket: atlas JSON has no \"frames\" entries")
	}

	atlas := &Atlas{
		image:   img,
		regions: make(map[string]image.Rectangle, len(file.Frames)),
	}
	for name, f := range file.Frames {
		atlas.regions[name] = image.Rect(
			f.Frame.X, f.Frame.Y,
			f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H,
		)
	}
	return atlas, nil
}

// Has reports whether the atlas contains a region with the given name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Sprite returns the named region as a sprite. If the name doesn't exist,
// it logs a warning (debug mode) and returns a 1×1 magenta placeholder.
func (a *Atlas) Sprite(name string) Sprite {
	r, ok := a.regions[name]
	if !ok {
		if globalDebug {
			log.Printf("wicket: atlas region %q not found, using magenta placeholder", name)
		}
		return magentaSprite()
	}
	s := Sprite{
		Image:  a.image,
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
		Color:  ColorWhite,
		base:   r.Min,
	}
	s.setFrame(r)
	return s
}

// ButtonSprites resolves the three state sprites for a button skin packed as
// "<prefix>_idle", "<prefix>_hover", and "<prefix>_hit".
func (a *Atlas) ButtonSprites(prefix string) (idle, hover, hit Sprite) {
	return a.Sprite(prefix + "_idle"),
		a.Sprite(prefix + "_hover"),
		a.Sprite(prefix + "_hit")
}

// magenta placeholder singleton (no sync.Once — wicket is single-threaded)
var magentaImage *ebiten.Image

func magentaSprite() Sprite {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return NewSprite(magentaImage)
}
