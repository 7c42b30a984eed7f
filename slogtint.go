package slogtint

import (
	"cmp"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Constants for versioning and default values.
const (
	version           = "v0.1.0"
	defaultConfigFile = "slogtint.yml"
)

// slogtint contains the configuration shared by a Handler and all handlers derived from it.
type slogtint struct {
	logger *slog.Logger
	base   Profiles
	opts   *HandlerOptions
	state  atomic.Pointer[state]
	mu     sync.Mutex
	doneCh chan struct{}
}

// state is an immutable snapshot of the active configuration. Handle only ever loads it.
type state struct {
	cfg      Config
	profiles Profiles
	styler   *Styler
	plain    bool
}

func (st *state) profileName() string {
	return st.cfg.Profile
}

// initHandler applies the given HandlerOptions. If opts.EnableFileWatcher == true and no
// HandlerOptions.ConfigFile is given, the config is read from defaultConfigFile.
// On error the previous configuration stays active.
func (s *slogtint) initHandler(opts HandlerOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.EnableFileWatcher && opts.ConfigFile == nil {
		cfgFile := defaultConfigFile
		opts.ConfigFile = &cfgFile
	}

	var cfg Config
	if opts.Config != nil {
		cfg = *opts.Config
	}

	// Config file takes precedence over the config object.
	if opts.ConfigFile != nil {
		c, err := LoadConfig(*opts.ConfigFile)
		if err != nil {
			return err
		}
		cfg = *c
		s.logger.Debug("loaded config from file", slog.String("filename", *opts.ConfigFile))
	}

	st, err := s.newState(cfg, opts)
	if err != nil {
		return err
	}
	s.opts = &opts
	s.state.Store(st)
	s.logger.Debug("using profile", slog.String("profile", st.profileName()), slog.Bool("plain", st.plain))

	s.stopWatcher()
	if opts.EnableFileWatcher {
		s.doneCh = s.initConfigFileWatcher(*opts.ConfigFile)
	}
	return nil
}

func (s *slogtint) newState(cfg Config, opts HandlerOptions) (*state, error) {
	profiles, err := cfg.LoadProfiles(s.base)
	if err != nil {
		return nil, err
	}

	cfg.Profile = cmp.Or(cfg.Profile, opts.Profile, ProfileDefault)
	p, ok := profiles[cfg.Profile]
	if !ok {
		return nil, configErrorf("profile", cfg.Profile, "unknown profile")
	}

	reset := ResetSequence
	if opts.Reset != nil {
		reset = *opts.Reset
	}
	if reset, err = cfg.ResetSequence(reset); err != nil {
		return nil, err
	}

	return &state{
		cfg:      cfg,
		profiles: profiles,
		styler:   NewStyler(p, reset),
		plain:    opts.Plain,
	}, nil
}

// currentOptions returns a copy of the options the handler was last initialized with.
func (s *slogtint) currentOptions() HandlerOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.opts
}

// stopWatcher stops a running config file watcher. The caller must hold s.mu.
func (s *slogtint) stopWatcher() {
	if s.doneCh != nil {
		close(s.doneCh)
		s.doneCh = nil
	}
}

// initConfigFileWatcher watches the specified config file for changes and applies them
// during program runtime without restarting.
func (s *slogtint) initConfigFileWatcher(cfgFile string) chan struct{} {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Debug("config file watcher error", slog.Any("error", err))
		return nil
	}

	// Add the config file to watch.
	if err = watcher.Add(cfgFile); err != nil {
		s.logger.Debug("config file watcher error", slog.Any("error", err))
		_ = watcher.Close()
		return nil
	}

	doneCh := make(chan struct{})
	// Start listening for events.
	go func() {
		s.logger.Debug("config file watcher started", slog.String("filename", cfgFile))

		closeWatcher := func() {
			if err := watcher.Close(); err != nil {
				s.logger.Debug("config file watcher error", slog.Any("error", err))
				return
			}
			s.logger.Debug("config file watcher stopped", slog.String("filename", cfgFile))
		}

		// The last config read from the file stays active after the file is gone.
		initHandlerWithoutWatcher := func(msg string) {
			s.logger.Debug(msg, slog.String("filename", cfgFile))
			opts := s.currentOptions()
			cfg := s.state.Load().cfg
			opts.EnableFileWatcher = false
			opts.ConfigFile = nil
			opts.Config = &cfg
			if err := s.initHandler(opts); err != nil {
				s.logger.Debug("config file watcher error", slog.Any("error", err))
			}
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				select {
				case <-doneCh:
					closeWatcher()
					return
				default:
				}
				switch {
				case event.Has(fsnotify.Remove):
					initHandlerWithoutWatcher("config file has been removed")
					closeWatcher()
					return
				case event.Has(fsnotify.Rename):
					initHandlerWithoutWatcher("config file has been renamed")
					closeWatcher()
					return
				case event.Has(fsnotify.Write):
					s.logger.Debug("config file was modified", slog.String("filename", event.Name))
					if err := s.initHandler(s.currentOptions()); err != nil {
						s.logger.Debug("keeping previous config", slog.Any("error", err))
						continue
					}
					// initHandler has started a new watcher.
					closeWatcher()
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Debug("config file watcher error", slog.Any("error", err))
			case <-doneCh:
				closeWatcher()
				return
			}
		}
	}()

	return doneCh
}
