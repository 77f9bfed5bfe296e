package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/carousel"
	"github.com/zoobzio/carousel/deck"
	"github.com/zoobzio/carousel/internal/viewer"
)

// viewOptions holds the view command flags.
type viewOptions struct {
	section    string
	url        string
	start      int
	delay      time.Duration
	controlled bool
	watch      bool
	logFile    string
}

var viewOpts = viewOptions{start: -1}

var viewCmd = &cobra.Command{
	Use:   "view <deck-file>",
	Short: "Present a slide deck",
	Long: `Present a YAML or JSON slide deck.

The starting slide comes from --start, or from the slide whose id matches
--section (or the fragment of --url). With --watch the deck reloads when
the file changes; an invalid edit keeps the previous deck on screen.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd.Context(), args[0], viewOpts)
	},
}

func init() {
	flags := viewCmd.Flags()
	flags.StringVar(&viewOpts.section, "section", "", "section token selecting the starting slide")
	flags.StringVar(&viewOpts.url, "url", "", "URL whose fragment or sectionId query selects the starting slide")
	flags.IntVar(&viewOpts.start, "start", -1, "starting slide index")
	flags.DurationVar(&viewOpts.delay, "delay", carousel.DefaultRevealDelay, "reveal delay")
	flags.BoolVar(&viewOpts.controlled, "controlled", false, "stop at the first and last slide instead of wrapping")
	flags.BoolVar(&viewOpts.watch, "watch", false, "reload the deck when the file changes")
	flags.StringVar(&viewOpts.logFile, "log", "", "write JSON logs to this file")
	rootCmd.AddCommand(viewCmd)
}

// sectionToken returns the explicit section, falling back to the URL. Both
// are normalized the way slide identifiers are.
func (o viewOptions) sectionToken() string {
	if o.section != "" {
		return carousel.NormalizeIdentifier(o.section)
	}
	return carousel.SectionFromURL(o.url)
}

func (o viewOptions) startIndex() carousel.Index {
	if o.start < 0 {
		return carousel.NoIndex
	}
	return carousel.At(o.start)
}

// newCarousel mounts a carousel over d. A controlled carousel is owned by
// a clamping policy and starts on the section slide when one matches.
func newCarousel(ctx context.Context, d deck.Deck, o viewOptions, onReveal func(int)) *carousel.Carousel[deck.Slide] {
	opts := []carousel.Option{
		carousel.WithContext(ctx),
		carousel.WithRevealDelay(o.delay),
		carousel.WithSection(o.sectionToken()),
		carousel.WithOnReveal(onReveal),
	}

	if !o.controlled {
		return carousel.New(d.CarouselSlides(), carousel.Uncontrolled{Initial: o.startIndex()}, opts...)
	}

	var c *carousel.Carousel[deck.Slide]
	c = carousel.New(d.CarouselSlides(), carousel.Controlled{
		Active: o.startIndex(),
		OnNavigate: func(dir carousel.Direction) {
			c.SetActiveIndex(viewer.ClampStep(dir, c.Current(), c.Len()))
		},
	}, opts...)
	if idx := c.SectionIndex(); idx >= 0 {
		c.SetActiveIndex(idx)
	}
	return c
}

func runView(ctx context.Context, path string, o viewOptions) error {
	d, err := deck.ReadFile(path)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(o.logFile)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog() //nolint:errcheck // best effort on exit

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program atomic.Pointer[tea.Program]
	send := func(msg tea.Msg) {
		if p := program.Load(); p != nil {
			p.Send(msg)
		}
	}

	registerHooks(logger, send)
	defer capitan.Shutdown()

	c := newCarousel(ctx, d, o, func(i int) { send(viewer.RevealMsg{Index: i}) })
	defer c.Close()

	p := tea.NewProgram(viewer.New(c, d.Title),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if o.watch {
		loader := deck.NewLoader(deck.NewFileWatcher(path), deck.Bind(c)).
			ErrorHistorySize(8).
			OnStop(func(s deck.State) {
				logger.Info("deck watch stopped", "state", s.String())
			})
		if err := loader.Start(ctx); err != nil {
			logger.Warn("initial deck reload failed", "err", err)
		}
	}
	program.Store(p)

	logger.Info("presenting deck", "path", path, "slides", c.Len(), "controlled", o.controlled)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
