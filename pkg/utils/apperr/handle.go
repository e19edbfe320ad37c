package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
)

// Handle logs an error that cannot be returned to a caller. Rejected input is
// logged at warn level, everything else at error level.
func Handle(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	level := slog.LevelError
	if goerr.HasTag(err, model.ErrTagInvalidInput) {
		level = slog.LevelWarn
	}

	ctxlog.From(ctx).Log(ctx, level, msg, "error", err)
}
