package conf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-conf/logging"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNoSources is returned when a module is declared without any source.
var ErrNoSources = errors.New("module requires at least one source")

// NewModule creates an fx module that loads the declared sources into a
// fresh Config and provides it to the DI graph under the given name tag.
// Sources load in declaration order, merging into the one tree; a load
// failure fails the whole provide. Call multiple times with different names
// to provide independent Config instances.
//
//nolint:ireturn // fx.Option is the standard return type for fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if len(options.Sources) == 0 {
		return fx.Error(ErrNoSources)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*Config, error) {
					return loadSources(name, &options)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

func loadSources(name string, options *Options) (*Config, error) {
	logger := logging.New(options.LogLevel, os.Stderr)
	cfg := New()

	for i, source := range options.Sources {
		err := cfg.LoadFrom(source.Parser, source.Fetcher, source.Root)
		if err != nil {
			return nil, fmt.Errorf("loading source %d at root %q: %w", i, source.Root, err)
		}

		logger.Debug("configuration source loaded",
			slog.String("module", name),
			slog.Int("source", i),
			slog.String("root", source.Root))
	}

	logger.Info("configuration loaded",
		slog.String("module", name),
		slog.Int("sources", len(options.Sources)))

	return cfg, nil
}
