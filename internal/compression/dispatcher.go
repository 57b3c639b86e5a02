package compression

import (
	"context"
	"fmt"
	"log/slog"

	"kompakt/internal/filetype"
)

// Dispatcher routes a classified file to its compression strategy and
// normalizes the result into an Outcome. Image and PDF strategies run
// synchronously on the caller's goroutine; video and audio go through
// the transcoder's worker pool.
type Dispatcher struct {
	transcoder *Transcoder
	logger     *slog.Logger
}

// NewDispatcher creates a dispatcher using the given transcoder for
// video and audio jobs.
func NewDispatcher(transcoder *Transcoder, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		transcoder: transcoder,
		logger:     logger,
	}
}

// Compress runs the synchronous strategies (image, PDF). Video and audio
// must go through Submit; calling Compress with those kinds is an error.
func (d *Dispatcher) Compress(ctx context.Context, path string, kind filetype.Kind) Outcome {
	switch kind {
	case filetype.Image:
		data, err := compressImage(path)
		if err != nil {
			d.logger.Error("Image compression failed", "file", path, "error", err)
			return failure(err)
		}
		return success(data)
	case filetype.PDF:
		data, err := compressPDF(path)
		if err != nil {
			d.logger.Error("PDF compression failed", "file", path, "error", err)
			return failure(err)
		}
		return success(data)
	case filetype.Video, filetype.Audio:
		return failure(NewCompressionError("dispatch", path,
			fmt.Errorf("%w: %s requires an async transcode", ErrTranscode, kind)))
	default:
		return failure(NewCompressionError("dispatch", path, ErrUnsupportedType))
	}
}

// Submit queues an asynchronous transcode (video, audio). The done
// callback fires exactly once with the outcome, on a worker goroutine.
func (d *Dispatcher) Submit(ctx context.Context, path string, kind filetype.Kind, done func(Outcome)) {
	switch kind {
	case filetype.Video, filetype.Audio:
		d.transcoder.Submit(ctx, path, kind, done)
	default:
		done(failure(NewCompressionError("dispatch", path, ErrUnsupportedType)))
	}
}

// IsAsync reports whether the kind compresses through the transcoder.
func IsAsync(kind filetype.Kind) bool {
	return kind == filetype.Video || kind == filetype.Audio
}

// OutputExtension returns the extension (with dot) the compressed copy
// of the input should carry. Audio transcodes re-mux into M4A; all other
// kinds keep the original extension.
func OutputExtension(inputPath string, kind filetype.Kind) string {
	return outputExtension(inputPath, kind)
}
