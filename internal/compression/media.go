package compression

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/panjf2000/ants/v2"

	"kompakt/internal/common"
	"kompakt/internal/filetype"
)

const (
	// videoCRF is the constant rate factor for the medium-quality video preset.
	videoCRF = 28
	// videoPreset is the x264 speed/compression preset.
	videoPreset = "medium"
	// audioBitrate is the AAC bitrate for the audio-only preset.
	audioBitrate = "128k"
)

// Transcoder drives the external ffmpeg binary for video and audio jobs.
// A single-worker pool serializes the jobs so at most one transcode runs
// at a time; each job reports completion exactly once via its callback.
type Transcoder struct {
	ffmpegPath string
	workDir    string
	pool       *ants.Pool
	logger     *slog.Logger
}

// NewTranscoder creates a transcoder writing intermediate files to workDir.
func NewTranscoder(ffmpegPath, workDir string, logger *slog.Logger) (*Transcoder, error) {
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcode worker pool: %w", err)
	}

	return &Transcoder{
		ffmpegPath: ffmpegPath,
		workDir:    workDir,
		pool:       pool,
		logger:     logger,
	}, nil
}

// Submit queues a transcode job. The done callback fires exactly once,
// on a worker goroutine, with the job's outcome.
func (t *Transcoder) Submit(ctx context.Context, inputPath string, kind filetype.Kind, done func(Outcome)) {
	err := t.pool.Submit(func() {
		done(t.transcode(ctx, inputPath, kind))
	})
	if err != nil {
		done(failure(NewCompressionError("submit", inputPath, fmt.Errorf("%w: %v", ErrTranscode, err))))
	}
}

// Release shuts the worker pool down.
func (t *Transcoder) Release() {
	t.pool.Release()
}

// IsAvailable checks if ffmpeg was found on the system.
func (t *Transcoder) IsAvailable() bool {
	return t.ffmpegPath != ""
}

// FFmpegPath returns the resolved path of the ffmpeg binary.
func (t *Transcoder) FFmpegPath() string {
	return t.ffmpegPath
}

func (t *Transcoder) transcode(ctx context.Context, inputPath string, kind filetype.Kind) Outcome {
	if t.ffmpegPath == "" {
		return failure(NewCompressionError("transcode", inputPath,
			fmt.Errorf("%w: ffmpeg not found, please install ffmpeg", ErrTranscode)))
	}

	outputPath := filepath.Join(t.workDir, common.GenerateUUID()+outputExtension(inputPath, kind))
	args := transcodeArgs(inputPath, outputPath, kind)

	t.logger.Info("Starting transcode session",
		"input", inputPath,
		"kind", kind.String(),
		"output", outputPath)

	cmd := exec.CommandContext(ctx, t.ffmpegPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(outputPath)
		t.logger.Error("Transcode session failed",
			"input", inputPath,
			"error", err,
			"output", tail(string(output), 512))
		return failure(NewCompressionError("transcode", inputPath,
			fmt.Errorf("%w: %v", ErrTranscode, err)))
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return failure(NewCompressionError("readback", outputPath,
			fmt.Errorf("%w: %v", ErrReadBack, err)))
	}
	// The intermediate file served its purpose once read back.
	os.Remove(outputPath)

	if len(data) == 0 {
		return failure(NewCompressionError("readback", outputPath, ErrReadBack))
	}

	return success(data)
}

// transcodeArgs builds the ffmpeg argument list for the fixed presets:
// medium-quality H.264 for video, audio-only AAC-in-M4A for audio.
func transcodeArgs(inputPath, outputPath string, kind filetype.Kind) []string {
	if kind == filetype.Audio {
		return []string{
			"-i", inputPath,
			"-vn",
			"-c:a", "aac",
			"-b:a", audioBitrate,
			"-y",
			outputPath,
		}
	}

	return []string{
		"-i", inputPath,
		"-c:v", "libx264",
		"-crf", fmt.Sprintf("%d", videoCRF),
		"-preset", videoPreset,
		"-c:a", "aac",
		"-movflags", "+faststart",
		"-y",
		outputPath,
	}
}

// outputExtension picks the container for the transcoded output. Audio is
// re-muxed into M4A; video keeps the original container.
func outputExtension(inputPath string, kind filetype.Kind) string {
	if kind == filetype.Audio {
		return ".m4a"
	}
	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext == "" {
		return ".mp4"
	}
	return ext
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
