package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/motion"
	"github.com/gridgarden/landing/internal/rendering"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
)

const (
	writeTimeout = 10 * time.Second
	outboxSize   = 16
)

// Session is the server side of one page view. The read loop owns the
// toggles and the trigger, the frame loop owns the counters and the writer
// goroutine is the only one touching the connection for writes.
type Session struct {
	id       string
	site     *content.Site
	settings Settings
	renderer rendering.Renderer
	frames   FrameSource
	printer  *message.Printer
	logger   *slog.Logger

	header   *motion.ScrollToggle
	floating *motion.ScrollToggle
	trigger  *motion.Trigger
	counters []*motion.CountUp

	outbox chan []byte
	loops  sync.WaitGroup
}

func newSession(id string, site *content.Site, settings Settings, renderer rendering.Renderer, frames FrameSource, logger *slog.Logger) *Session {
	counters := make([]*motion.CountUp, len(site.Stats.Items))
	for i, st := range site.Stats.Items {
		counters[i] = motion.NewCountUp(st.Number, st.Suffix, site.CounterDuration)
	}
	return &Session{
		id:       id,
		site:     site,
		settings: settings,
		renderer: renderer,
		frames:   frames,
		printer:  sections.NumberPrinter(settings.Locale),
		logger:   logger.With("session_id", id),
		header:   motion.NewScrollToggle(settings.HeaderThreshold),
		floating: motion.NewScrollToggle(settings.FloatingThreshold),
		trigger:  motion.NewTrigger(settings.VisibilityThreshold, motion.WithRootMargin(settings.RootMargin)),
		counters: counters,
		outbox:   make(chan []byte, outboxSize),
	}
}

// Run serves conn until the peer disconnects or ctx is done. On return the
// frame loop has stopped and the trigger is released.
func (s *Session) Run(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.trigger.Release()
		s.loops.Wait()
	}()

	s.loops.Add(1)
	go func() {
		defer s.loops.Done()
		defer cancel()
		s.writePump(ctx, conn)
	}()

	s.trigger.OnFire(func() { s.startCounters(ctx) })

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				s.logger.Debug("live session closed")
				return nil
			}
			return err
		}
		s.handle(ctx, data)
	}
}

// handle applies one viewport message. Malformed messages are logged and
// dropped.
func (s *Session) handle(ctx context.Context, data []byte) {
	msg, err := ParseViewport(data)
	if err != nil {
		s.logger.Warn("ignoring live message", "error", err)
		return
	}

	y := float64(msg.Y)
	var changes g.Group
	if scrolled, changed := s.header.Update(y); changed {
		changes = append(changes, sections.HeaderOOB(s.site, scrolled))
	}
	if visible, changed := s.floating.Update(y); changed {
		changes = append(changes, sections.FloatingCTAOOB(s.site, visible))
	}
	if len(changes) > 0 {
		s.send(ctx, changes)
	}

	s.trigger.Observe(msg.StatsRect(), float64(msg.VH))
}

func (s *Session) startCounters(ctx context.Context) {
	for _, c := range s.counters {
		c.Start()
	}
	s.logger.Debug("stats visible, starting counters", "count", len(s.counters))

	// Until now the page shows the final values.
	s.send(ctx, sections.StatValues(s.site.Stats.Items, nil, s.printer))

	s.loops.Add(1)
	go func() {
		defer s.loops.Done()
		s.frameLoop(ctx)
	}()
}

// frameLoop pushes one fragment with every counter value per frame until all
// counters are done.
func (s *Session) frameLoop(ctx context.Context) {
	values := make([]int, len(s.counters))
	for now := range s.frames(ctx, motion.FPS(s.settings.FPS)) {
		done := true
		for i, c := range s.counters {
			v, finished := c.Advance(now)
			values[i] = v
			done = done && finished
		}
		if !s.send(ctx, sections.StatValues(s.site.Stats.Items, values, s.printer)) || done {
			return
		}
	}
}

// send renders node and queues it for the writer. It reports false once the
// session is shutting down.
func (s *Session) send(ctx context.Context, node g.Node) bool {
	body, err := s.renderer.RenderComponent(ctx, node)
	if err != nil {
		s.logger.Error("failed to render live fragment", "error", err)
		return true
	}
	select {
	case s.outbox <- body:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Session) writePump(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.outbox:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				s.logger.Debug("live write failed", "error", err)
				return
			}
		}
	}
}
