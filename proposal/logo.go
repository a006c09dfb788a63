package proposal

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"

	"github.com/disintegration/imaging"
)

// Logo bounds in pixels for the proposal header
const (
	LogoMaxWidth  = 480
	LogoMaxHeight = 160
)

// LoadLogo reads an image file and returns it as an inline PNG data URI.
// An empty path means no logo.
func LoadLogo(path string) (template.URL, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read logo %s: %w", path, err)
	}
	return EncodeLogo(data, LogoMaxWidth, LogoMaxHeight)
}

// EncodeLogo decodes any supported image, shrinks it to fit maxW x maxH
// keeping the aspect ratio, and encodes it as a base64 PNG data URI.
// Inlining keeps the printer from loading remote resources.
func EncodeLogo(data []byte, maxW, maxH int) (template.URL, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode logo: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxW || bounds.Dy() > maxH {
		log.Printf("🔄 Resizing logo: %dx%d to fit %dx%d", bounds.Dx(), bounds.Dy(), maxW, maxH)
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode logo: %w", err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
