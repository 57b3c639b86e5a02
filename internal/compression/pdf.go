package compression

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// compressPDF parses a PDF document and re-serializes its optimized
// representation. Embedded images are not re-sampled.
func compressPDF(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewCompressionError("load", path, fmt.Errorf("%w: %v", ErrLoad, err))
	}

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, nil); err != nil {
		return nil, NewCompressionError("parse", path, fmt.Errorf("%w: %v", ErrLoad, err))
	}
	if buf.Len() == 0 {
		return nil, NewCompressionError("serialize", path, ErrSerialize)
	}

	return buf.Bytes(), nil
}
