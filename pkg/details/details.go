// Package details classifies multispectral capture images by their file
// names, e.g. "0001_012_pseudo_CFUR-CFUG" or "0001_012_B_pca_RGB-inv1-2-3".
package details

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingToken      = errors.New("missing token")
	ErrUnknownProcessing = errors.New("unknown processing")
	ErrMalformedPCA      = errors.New("malformed pca flag")
)

// Token positions in the underscore-separated name.
const (
	PositionFolio = iota
	PositionSequence
	PositionProcessing
	PositionProcessingArgs
)

// ParseError reports which token of a name could not be parsed.
type ParseError struct {
	Name     string
	Position int
	Token    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("image name %q: token %d %q: %v", e.Name, e.Position, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Details is what a file name says about how the image was captured.
type Details struct {
	Type         ImageType
	Illumination []Illumination
}

func (d Details) String() string {
	illumination := make([]string, len(d.Illumination))
	for i, il := range d.Illumination {
		illumination[i] = il.String()
	}
	return fmt.Sprintf("image type: %s\nillumination: %s", d.Type, strings.Join(illumination, ", "))
}

var sequenceExtensions = map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true}

// Parse classifies the base name of an image file, without extension.
func Parse(name string) (Details, error) {
	tokens := strings.Split(name, "_")
	fail := func(position int, err error) (Details, error) {
		token := ""
		if position < len(tokens) {
			token = tokens[position]
		}
		return Details{}, &ParseError{Name: name, Position: position, Token: token, Err: err}
	}

	processing := PositionProcessing
	if len(tokens) <= processing {
		return fail(len(tokens), ErrMissingToken)
	}
	if sequenceExtensions[tokens[processing]] {
		processing++
		if len(tokens) <= processing {
			return fail(processing, ErrMissingToken)
		}
	}
	args := processing + 1

	if il, ok := ParseIllumination(tokens[processing]); ok {
		return Details{Type: Pack8{}, Illumination: []Illumination{il}}, nil
	}

	switch tokens[processing] {
	case "color":
		return Details{Type: Color{}}, nil
	case "pca":
		if len(tokens) <= args {
			return fail(args, ErrMissingToken)
		}
		pca, err := parsePCA(tokens[args])
		if err != nil {
			return fail(args, err)
		}
		return Details{Type: pca}, nil
	}

	var imageType ImageType
	switch tokens[processing] {
	case "pseudo":
		imageType = Pseudo{}
	case "sharpie":
		imageType = Sharpie{}
	case "csharpie":
		imageType = ColorSharpie{}
	default:
		return fail(processing, ErrUnknownProcessing)
	}
	if len(tokens) <= args {
		return fail(args, ErrMissingToken)
	}
	var illumination []Illumination
	for _, s := range strings.Split(tokens[args], "-") {
		if il, ok := ParseIllumination(s); ok {
			illumination = append(illumination, il)
		}
	}
	return Details{Type: imageType, Illumination: illumination}, nil
}

// parsePCA reads "C<n>" or "<prefix>-[inv]<r>-[inv]<g>-[inv]<b>".
func parsePCA(flag string) (ImageType, error) {
	if len(flag) == 2 {
		n, err := strconv.ParseUint(strings.TrimPrefix(flag, "C"), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPCA, err)
		}
		return PCAComponent{Component: uint8(n)}, nil
	}
	parts := strings.Split(flag, "-")
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: want 3 components, got %d", ErrMalformedPCA, len(parts)-1)
	}
	var channels [3]PCAChannel
	for i, part := range parts[1:4] {
		n, err := strconv.ParseUint(strings.TrimPrefix(part, "inv"), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPCA, err)
		}
		channels[i] = PCAChannel{
			Inverted:  strings.HasPrefix(part, "inv"),
			Component: uint8(n),
		}
	}
	return PCAColor{R: channels[0], G: channels[1], B: channels[2]}, nil
}
