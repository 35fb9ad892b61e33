package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

var (
	// BannerFace is used for screen titles and match results
	BannerFace font.Face
	// ButtonFace is used for menu buttons, messages and the ability key
	ButtonFace font.Face
	// LabelFace is used for structure health, damage text and the cooldown timer
	LabelFace font.Face
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

func loadFonts() error {
	mplus, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse banner font: %v", err)
	}
	BannerFace, err = opentype.NewFace(mplus, &opentype.FaceOptions{
		Size:    32,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create banner font face: %v", err)
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse label font: %v", err)
	}
	ButtonFace = newTrueTypeFace(regular, 20)
	LabelFace = newTrueTypeFace(regular, 12)

	return nil
}

func newTrueTypeFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
