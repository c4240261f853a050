package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdouB/clipper/internal/clipwriter"
	"github.com/AbdouB/clipper/internal/config"
	"github.com/AbdouB/clipper/internal/models"
	"go.uber.org/zap"
)

// Store is the persistence the service needs
type Store interface {
	EnsureInitialized() error
	Load() (*models.Clipboard, error)
	Save(clipboard *models.Clipboard) error
}

// Service handles one request per invocation: at most one load, one
// command and one save.
type Service struct {
	cfg    config.Config
	store  Store
	writer clipwriter.Writer
	logger *zap.Logger
}

// NewService wires the dispatcher to storage and the clipboard writer
func NewService(cfg config.Config, store Store, writer clipwriter.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, store: store, writer: writer, logger: logger}
}

// Handle serves req. The clipboard is loaded once up front and every
// derived value, including new ids, comes from that snapshot.
func (s *Service) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	var clipboard *models.Clipboard
	if NeedsClipboard(req) {
		if err := s.store.EnsureInitialized(); err != nil {
			return Response{}, err
		}
		loaded, err := s.store.Load()
		if err != nil {
			return Response{}, err
		}
		clipboard = loaded
	}

	resp, err := Handle(s.cfg, clipboard, req)
	if err != nil {
		// form errors are routine; the host shows them as a notification
		log := s.logger.Warn
		if errors.Is(err, ErrValidation) {
			log = s.logger.Debug
		}
		log("request failed",
			zap.String("kind", string(req.Kind)),
			zap.String("command", req.Command),
			zap.Error(err),
		)
		return Response{}, err
	}

	if req.Kind == KindSearch {
		s.logger.Debug("search served", zap.Int("results", len(resp.Results)))
		return resp, nil
	}

	outcome := resp.Outcome
	if outcome.Command.Mutates() {
		if err := s.store.Save(outcome.Clipboard); err != nil {
			return Response{}, err
		}
		s.logger.Info("command applied",
			zap.Stringer("command", outcome.Command),
			zap.Int("clip_id", outcome.ClipID),
			zap.Bool("changed", outcome.Changed),
		)
		return resp, nil
	}

	if outcome.Command == CommandCopyImage {
		if s.writer == nil {
			return Response{}, fmt.Errorf("no clipboard writer configured")
		}
		if err := s.writer.WriteImage(ctx, outcome.CopyPath); err != nil {
			return Response{}, fmt.Errorf("failed to copy image %d: %w", outcome.ClipID, err)
		}
		s.logger.Info("image copied", zap.Int("clip_id", outcome.ClipID), zap.String("path", outcome.CopyPath))
	}
	return resp, nil
}
