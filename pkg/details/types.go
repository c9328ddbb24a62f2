package details

import (
	"fmt"
	"strconv"
)

// ImageType is one of Pack8, Pseudo, Sharpie, ColorSharpie, PCAComponent,
// PCAColor or Color.
type ImageType interface {
	fmt.Stringer
	imageType()
}

// Pack8 is an 8-bit version of the raw capture.
type Pack8 struct{}

type Pseudo struct{}

type Sharpie struct{}

type ColorSharpie struct{}

// PCAComponent is a single principal component image.
type PCAComponent struct {
	Component uint8
}

type PCAChannel struct {
	Inverted  bool
	Component uint8
}

// PCAColor maps three principal components onto RGB.
type PCAColor struct {
	R, G, B PCAChannel
}

// Color is composed from five visible light captures.
type Color struct{}

func (Pack8) imageType()        {}
func (Pseudo) imageType()       {}
func (Sharpie) imageType()      {}
func (ColorSharpie) imageType() {}
func (PCAComponent) imageType() {}
func (PCAColor) imageType()     {}
func (Color) imageType()        {}

func (Pack8) String() string {
	return "an 8-bit version of the 'raw' capture image"
}

func (Pseudo) String() string {
	return "pseudo-color image"
}

func (Sharpie) String() string {
	return "monochrome image derived from the pseudo-color image that 'strips away' the over text"
}

func (ColorSharpie) String() string {
	return `"color sharpie" image; a color version of the monochrome sharpie that employs all three ultraviolet images taken with the color filter wheel`
}

func (PCAComponent) String() string {
	return "an image derived from a Principal Component Analysis, single component"
}

func (PCAColor) String() string {
	return "an image derived from a Principal Component Analysis, a color image produced from three single component images"
}

func (Color) String() string {
	return "a color image generated from five separate visible light images"
}

// Illumination is either an LED wavelength or a named lighting setup.
type Illumination interface {
	fmt.Stringer
	illumination()
}

// LED is narrowband LED light of the given wavelength in nm.
type LED uint16

// Named lighting setups: raking light and color filter wheel combinations.
type Named string

const (
	RAIR Named = "RAIR"
	RABR Named = "RABR"
	RAIL Named = "RAIL"
	RABL Named = "RABL"
	CFUR Named = "CFUR"
	CFUG Named = "CFUG"
	CFUB Named = "CFUB"
	CFBR Named = "CFBR"
	CFBG Named = "CFBG"
	CFBB Named = "CFBB"
	CFUX Named = "CFUX"
)

var namedDescriptions = map[Named]string{
	RAIR: "raking infrared (940 nm) illumination from the right",
	RABR: "raking blue (470 nm) illumination from the right",
	RAIL: "raking infrared (940 nm) illumination from the left",
	RABL: "raking blue (470 nm) illumination from the left",
	CFUR: "ultraviolet (365 nm) illumination with red color filter",
	CFUG: "ultraviolet (365 nm) illumination with green color filter",
	CFUB: "ultraviolet (365 nm) illumination with blue color filter",
	CFBR: "blue (450 nm) illumination with red color filter",
	CFBG: "blue (450 nm) illumination with green color filter",
	CFBB: "blue (450 nm) illumination with blue color filter",
	CFUX: "all three color filter ultraviolet images in combination (CFUR, CFUG, CFUB)",
}

func (LED) illumination()   {}
func (Named) illumination() {}

func (l LED) String() string {
	return fmt.Sprintf("%d nm LED illumination", uint16(l))
}

func (n Named) String() string {
	return namedDescriptions[n]
}

// ParseIllumination accepts a decimal wavelength or one of the named setups.
func ParseIllumination(s string) (Illumination, bool) {
	if nm, err := strconv.ParseUint(s, 10, 16); err == nil {
		return LED(nm), true
	}
	if _, ok := namedDescriptions[Named(s)]; ok {
		return Named(s), true
	}
	return nil, false
}
