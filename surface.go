package linechart

import (
	"log/slog"
	"slices"
	"sync"
)

// An Option configures a [Surface].
type Option func(*Surface)

// WithLogger sets the logger a Surface reports failed passes to. The default
// is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(s *Surface) {
		if l != nil {
			s.log = l
		}
	}
}

// WithConfig sets the initial configuration. The default is [DefaultConfig].
func WithConfig(cfg Config) Option {
	return func(s *Surface) { s.cfg = cfg }
}

// Surface holds the current data, frame and configuration of a chart and the
// scene last rendered from them. Every setter runs a full render pass.
//
// Passes are serialized: a call that arrives while a pass is running waits
// for it to finish, so a scene never mixes the results of two passes. It is
// safe to use a Surface from multiple goroutines.
type Surface struct {
	mu     sync.Mutex
	log    *slog.Logger
	frame  Size
	cfg    Config
	values []int
	scene  *Scene
	hooks  []func(*Scene)
	passes uint64
}

// NewSurface returns a surface with no data for a frame of the given size.
func NewSurface(frame Size, opts ...Option) *Surface {
	s := &Surface{
		log:   slog.Default(),
		frame: frame,
		cfg:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scene = emptyScene(s.frame, s.cfg)
	return s
}

func emptyScene(frame Size, cfg Config) *Scene {
	cfg.Layout = cfg.Layout.orDefault()
	return &Scene{
		Frame:        frame,
		Config:       cfg,
		ContentWidth: ContentWidth(0, cfg.Layout.Spacing),
	}
}

// OnRender registers fn to be called with the scene of every successful pass.
// Hooks run synchronously on the goroutine that triggered the pass, before the
// setter returns, and must not call methods of the Surface.
func (s *Surface) OnRender(fn func(*Scene)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// SetData replaces the samples and renders them. values is copied.
func (s *Surface) SetData(values []int) (*Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = slices.Clone(values)
	return s.render()
}

// SetRegionSize changes the size of the frame the chart is drawn in and
// renders the current samples again.
func (s *Surface) SetRegionSize(frame Size) (*Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
	return s.render()
}

// SetConfig replaces the configuration and renders the current samples again.
func (s *Surface) SetConfig(cfg Config) (*Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return s.render()
}

// Scene returns the scene of the most recent pass. After a failed pass it is
// an empty scene.
func (s *Surface) Scene() *Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Values returns a copy of the current samples.
func (s *Surface) Values() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.values)
}

// Passes returns the number of render passes run so far.
func (s *Surface) Passes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passes
}

// render must be called with s.mu held.
func (s *Surface) render() (*Scene, error) {
	s.passes++
	scene, err := Render(s.values, s.frame, s.cfg)
	if err != nil {
		s.log.Warn("chart render failed",
			slog.String("frame", s.frame.String()),
			slog.Int("samples", len(s.values)),
			slog.Any("error", err))
		s.scene = emptyScene(s.frame, s.cfg)
		return s.scene, err
	}
	s.scene = scene
	s.log.Debug("chart rendered",
		slog.Uint64("pass", s.passes),
		slog.Int("samples", len(scene.Points)),
		slog.Float64("content_width", scene.ContentWidth))
	for _, fn := range s.hooks {
		fn(scene)
	}
	return scene, nil
}
