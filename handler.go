package slogtint

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type Handler struct {
	*slogtint
	next slog.Handler
	emit EmitFunc
}

// NewHandler creates a new slog.Handler that styles the message of each record by its level before
// passing the record on to h.
//
// If the config file cannot be used, the handler continues without it. If the options still cannot be
// applied (e.g. an unknown profile name), it falls back to the "default" profile.
func NewHandler(h slog.Handler, opts *HandlerOptions) *Handler {
	o := HandlerOptions{}

	if opts != nil {
		o = *opts
	}

	logger := slog.New(NewNilHandler())
	switch h.(type) {
	case nil:
		panic("slog.Handler must not be nil")
	case *Handler:
		panic("slog.Handler must not be of type *Handler")
	default:
		// If debug mode is enabled, we use the given log Handler also for internal log messages.
		if o.Debug {
			logger = slog.New(h).WithGroup("slogtint").With(slog.String("version", version))
			logger.Debug("debug mode enabled")
		}
	}

	base := BuiltinProfiles()
	for name, p := range o.Profiles {
		base[name] = p.Clone()
	}

	st := &slogtint{logger: logger, base: base}
	if err := st.initHandler(o); err != nil {
		logger.Debug("falling back to config without config file", slog.Any("error", err))
		fallback := o
		fallback.ConfigFile = nil
		fallback.EnableFileWatcher = false
		if err := st.initHandler(fallback); err != nil {
			logger.Debug("falling back to default config", slog.Any("error", err))
			fallback.Config = nil
			fallback.Profile = ""
			if err := st.initHandler(fallback); err != nil {
				panic(err) // unreachable: the built-in default profile always exists.
			}
		}
	}

	return newHandler(st, h)
}

func newHandler(st *slogtint, next slog.Handler) *Handler {
	hndl := &Handler{slogtint: st, next: next}
	hndl.emit = hndl.emitUnstyled
	return hndl
}

// emitUnstyled is the emit operation of the wrapped handler.
func (h *Handler) emitUnstyled(ctx context.Context, r *slog.Record) error {
	return h.next.Handle(ctx, *r)
}

func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

// Handle styles the message of rec with the active profile and passes it to the wrapped handler.
// rec is a copy, so the caller's record is left untouched.
func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	st := h.state.Load()
	if st.plain {
		return h.next.Handle(ctx, rec)
	}
	return wrapEmit(h.emit, st.styler)(ctx, &rec)
}

// WithAttrs returns a Handler for h.next.WithAttrs(attrs). It follows profile changes of h.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return newHandler(h.slogtint, h.next.WithAttrs(attrs))
}

// WithGroup returns a Handler for h.next.WithGroup(name). It follows profile changes of h.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return newHandler(h.slogtint, h.next.WithGroup(name))
}

// GetConfig returns the current configuration, which may be adjusted and then used with UseConfig(cfg Config).
func (h *Handler) GetConfig() Config {
	return h.state.Load().cfg
}

// ProfileName returns the name of the active profile.
func (h *Handler) ProfileName() string {
	return h.state.Load().profileName()
}

// Profiles returns a copy of all profiles known to the handler.
func (h *Handler) Profiles() Profiles {
	return h.state.Load().profiles.Clone()
}

// UseConfig takes a new Config and immediately applies it to the current configuration.
// It also disables any active file watcher.
func (h *Handler) UseConfig(cfg Config) error {
	opts := h.currentOptions()
	opts.EnableFileWatcher = false
	opts.ConfigFile = nil
	opts.Config = &cfg

	if err := h.initHandler(opts); err != nil {
		return err
	}
	h.logger.Debug(fmt.Sprintf("using config: %#v", cfg))
	return nil
}

// UseProfile switches to the named profile. An active file watcher keeps running and a later change of the
// config file replaces the profile again.
func (h *Handler) UseProfile(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur := h.state.Load()
	p, ok := cur.profiles[name]
	if !ok {
		return configErrorf("profile", name, "unknown profile")
	}

	st := *cur
	st.cfg.Profile = name
	st.styler = NewStyler(p, cur.styler.Reset())
	h.state.Store(&st)
	h.opts.Profile = name
	if h.opts.Config != nil {
		cfg := *h.opts.Config
		cfg.Profile = name
		h.opts.Config = &cfg
	}

	h.logger.Debug("using profile", slog.String("profile", name))
	return nil
}

// UseProfileTemporarily switches to the named profile like UseProfile(name string) and switches back to the
// previous profile after revert amount of time has elapsed.
func (h *Handler) UseProfileTemporarily(name string, revert time.Duration) error {
	old := h.ProfileName()
	if err := h.UseProfile(name); err != nil {
		return err
	}

	go func() {
		<-time.After(revert)
		if err := h.UseProfile(old); err != nil {
			h.logger.Debug("could not revert profile", slog.Any("error", err))
			return
		}
		h.logger.Debug("reverted profile", slog.String("profile", old))
	}()
	return nil
}

// UseConfigFile takes a filename as an argument that will be used for watching a config file for changes.
// If no such filename is given, the Handler uses the already existing ConfigFile from the HandlerOptions or,
// if not present, falls back to the default config file (specified via defaultConfigFile).
func (h *Handler) UseConfigFile(cfgFile ...string) error {
	opts := h.currentOptions()
	if len(cfgFile) == 1 && cfgFile[0] != "" {
		opts.ConfigFile = &cfgFile[0]
	}
	opts.EnableFileWatcher = true

	if err := h.initHandler(opts); err != nil {
		return err
	}
	h.logger.Debug("using config file", slog.String("filename", *h.currentOptions().ConfigFile))
	return nil
}

// Close stops the config file watcher, if any. The handler stays usable.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopWatcher()
	h.opts.EnableFileWatcher = false
	return nil
}

type nilHandler struct{}

// NewNilHandler provides a nil slog.Handler for silencing slog.Log() calls.
func NewNilHandler() slog.Handler {
	return &nilHandler{}
}

func (h *nilHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h *nilHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h *nilHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *nilHandler) WithGroup(_ string) slog.Handler {
	return h
}
