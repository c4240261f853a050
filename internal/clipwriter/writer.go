// Package clipwriter puts image files on the OS clipboard
package clipwriter

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// mimePlaceholder in a command template is replaced by the image MIME type
const mimePlaceholder = "{mime}"

// ErrUnsupportedImage means the file is not a png, jpeg, gif or webp image
var ErrUnsupportedImage = errors.New("unsupported image format")

// Writer copies an image file to the clipboard
type Writer interface {
	WriteImage(ctx context.Context, path string) error
}

// CommandWriter pipes image bytes into an external clipboard utility,
// e.g. "wl-copy --type {mime}" or "xclip -selection clipboard -t {mime}".
type CommandWriter struct {
	template string
	logger   *zap.Logger
}

// NewCommandWriter creates a writer for a command template.
// A template without {mime} gets "--type {mime}" appended.
func NewCommandWriter(template string, logger *zap.Logger) *CommandWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !strings.Contains(template, mimePlaceholder) {
		template = strings.TrimSpace(template) + " --type " + mimePlaceholder
	}
	return &CommandWriter{template: template, logger: logger}
}

// WriteImage runs the clipboard command with the image on stdin
func (w *CommandWriter) WriteImage(ctx context.Context, path string) error {
	mime, err := DetectMIME(path)
	if err != nil {
		return err
	}

	argv, err := shellwords.Parse(w.template)
	if err != nil {
		return fmt.Errorf("failed to parse clipboard command: %w", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("clipboard command is empty")
	}
	for i := range argv {
		argv[i] = strings.ReplaceAll(argv[i], mimePlaceholder, mime)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = file

	w.logger.Debug("copying image", zap.String("path", path), zap.String("mime", mime), zap.Strings("argv", argv))

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// DetectMIME sniffs the image format of the file at path
func DetectMIME(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, path, err)
	}
	return "image/" + format, nil
}
