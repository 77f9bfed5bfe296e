package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/carousel"
	"github.com/zoobzio/carousel/deck"
	"github.com/zoobzio/carousel/internal/viewer"
)

// openLogger returns a JSON logger writing to path. The terminal belongs to
// the viewer, so an empty path discards logs.
func openLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logger, f.Close, nil
}

// registerHooks logs carousel and deck signals and forwards deck results to
// the viewer.
func registerHooks(logger *slog.Logger, send func(tea.Msg)) {
	capitan.Hook(carousel.SlideChanged, func(_ context.Context, e *capitan.Event) {
		from, _ := carousel.KeyPreviousIndex.From(e)
		to, _ := carousel.KeyIndex.From(e)
		logger.Info("slide changed", "from", from, "to", to)
	})

	capitan.Hook(carousel.RevealApplied, func(_ context.Context, e *capitan.Event) {
		index, _ := carousel.KeyIndex.From(e)
		logger.Debug("slide revealed", "index", index)
	})

	capitan.Hook(carousel.NavigateRequested, func(_ context.Context, e *capitan.Event) {
		dir, _ := carousel.KeyDirection.From(e)
		logger.Info("navigate requested", "direction", dir)
	})

	capitan.Hook(carousel.SectionMatched, func(_ context.Context, e *capitan.Event) {
		section, _ := carousel.KeySection.From(e)
		index, _ := carousel.KeyIndex.From(e)
		logger.Info("section matched", "section", section, "index", index)
	})

	capitan.Hook(deck.DeckApplySucceeded, func(_ context.Context, e *capitan.Event) {
		slides, _ := deck.KeySlides.From(e)
		logger.Info("deck applied", "slides", slides)
		send(viewer.DeckMsg{})
	})

	deckFailed := func(stage string) func(context.Context, *capitan.Event) {
		return func(_ context.Context, e *capitan.Event) {
			errMsg, _ := deck.KeyError.From(e)
			logger.Warn("deck rejected", "stage", stage, "err", errMsg)
			send(viewer.DeckMsg{Err: errMsg})
		}
	}
	capitan.Hook(deck.DeckDecodeFailed, deckFailed("decode"))
	capitan.Hook(deck.DeckValidationFailed, deckFailed("validate"))
	capitan.Hook(deck.DeckApplyFailed, deckFailed("apply"))

	capitan.Hook(deck.LoaderStateChanged, func(_ context.Context, e *capitan.Event) {
		oldState, _ := deck.KeyOldState.From(e)
		newState, _ := deck.KeyNewState.From(e)
		logger.Info("deck loader state", "from", oldState, "to", newState)
	})
}
