package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Large   FontName = "large"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts       = map[FontName]font.Face{}
	defaultOnce sync.Once
)

// LoadDefaults registers the bundled Go fonts under every FontName.
func LoadDefaults() error {
	var err error
	defaultOnce.Do(func() {
		sizes := []struct {
			name FontName
			ttf  []byte
			size float64
		}{
			{Regular, goregular.TTF, 16},
			{Small, goregular.TTF, 12},
			{Large, gobold.TTF, 22},
			{Title, gobold.TTF, 48},
		}
		for _, s := range sizes {
			if err = LoadFontWithSize(s.name, s.ttf, s.size); err != nil {
				return
			}
		}
	})
	return err
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
