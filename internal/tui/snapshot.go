package tui

import (
	"context"

	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// RenderSnapshot mounts a dashboard, waits for both slices to settle and
// returns the rendered view. It never draws to a terminal, which makes it
// usable from pipes and scripts.
//
// A slice that fails is rendered in its failed state; the returned error is
// non-nil only when ctx ends before the loads settle.
func RenderSnapshot(ctx context.Context, src source.Source, width int, opts ...Option) (string, error) {
	opts = append(opts, WithWidth(width), WithoutHelp())
	m := NewModel(ctx, src, opts...)
	defer m.Unmount()
	m.life.mounted.Store(true)

	var results [2]tea.Msg
	g, gctx := errgroup.WithContext(m.Context())
	g.Go(func() error {
		results[0] = msg.LoadAerodynamic(gctx, m.src, m.aero.Generation)()
		return nil
	})
	g.Go(func() error {
		results[1] = msg.LoadTelemetry(gctx, m.src, m.tel.Generation)()
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var model tea.Model = m
	for _, result := range results {
		model, _ = model.Update(result)
	}
	return model.View(), nil
}
