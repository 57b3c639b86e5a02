package compression

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

const (
	// imageQuality is the fixed re-encode quality factor on a 0-1 scale.
	imageQuality = 0.5

	// maxImageDimension caps the longest side of a decoded image before
	// re-encoding. Anything within the cap keeps its dimensions.
	maxImageDimension = 4096
)

// compressImage decodes an image file and re-encodes it in the same
// format family at the fixed quality factor.
func compressImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewCompressionError("load", path, fmt.Errorf("%w: %v", ErrLoad, err))
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, NewCompressionError("decode", path, fmt.Errorf("%w: %v", ErrLoad, err))
	}

	img = capDimensions(img)

	var buf bytes.Buffer
	switch format {
	case "png":
		encoder := &png.Encoder{CompressionLevel: png.BestCompression}
		err = encoder.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: int(imageQuality * 100)})
	}
	if err != nil {
		return nil, NewCompressionError("encode", path, fmt.Errorf("%w: %v", ErrEncode, err))
	}
	if buf.Len() == 0 {
		return nil, NewCompressionError("encode", path, ErrEncode)
	}

	return buf.Bytes(), nil
}

// capDimensions downscales images whose longest side exceeds the cap,
// preserving aspect ratio.
func capDimensions(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxImageDimension && height <= maxImageDimension {
		return img
	}

	if width >= height {
		return resize.Resize(maxImageDimension, 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, maxImageDimension, img, resize.Lanczos3)
}
