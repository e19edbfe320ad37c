package apperr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/utils/apperr"
)

func captureLog(t *testing.T, fn func(ctx context.Context)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fn(ctxlog.With(context.Background(), logger))

	if buf.Len() == 0 {
		return nil
	}
	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	return entry
}

func TestHandle(t *testing.T) {
	t.Run("internal error logged at error level", func(t *testing.T) {
		entry := captureLog(t, func(ctx context.Context) {
			apperr.Handle(ctx, "failed to forward", goerr.New("boom"))
		})
		gt.True(t, entry != nil)
		gt.Equal(t, entry["level"], any("ERROR"))
		gt.Equal(t, entry["msg"], any("failed to forward"))
	})

	t.Run("invalid input logged at warn level", func(t *testing.T) {
		entry := captureLog(t, func(ctx context.Context) {
			apperr.Handle(ctx, "bad request", goerr.New("negative count", goerr.T(model.ErrTagInvalidInput)))
		})
		gt.True(t, entry != nil)
		gt.Equal(t, entry["level"], any("WARN"))
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		entry := captureLog(t, func(ctx context.Context) {
			apperr.Handle(ctx, "nothing", nil)
		})
		gt.True(t, entry == nil)
	})
}
