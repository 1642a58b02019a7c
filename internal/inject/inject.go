package inject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ironsheep/placeholder-png/internal/config"
	"github.com/ironsheep/placeholder-png/internal/log"
	"github.com/ironsheep/placeholder-png/internal/placeholder"
	"github.com/ironsheep/placeholder-png/internal/server"
	"github.com/ironsheep/placeholder-png/internal/typeface"
	"github.com/samber/do"
)

func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	})
	do.ProvideValue[*config.Config](injector, cfg)
	do.ProvideValue[*slog.Logger](injector, logger)

	do.Provide[*typeface.Font](injector, func(i *do.Injector) (*typeface.Font, error) {
		return typeface.Load()
	})
	do.Provide[*placeholder.Synthesizer](injector, func(i *do.Injector) (*placeholder.Synthesizer, error) {
		font, err := do.Invoke[*typeface.Font](i)
		if err != nil {
			return nil, err
		}
		return placeholder.NewSynthesizer(font, do.MustInvoke[*config.Config](i).MaxDimension), nil
	})
	do.Provide[*server.Server](injector, func(i *do.Injector) (*server.Server, error) {
		synth, err := do.Invoke[*placeholder.Synthesizer](i)
		if err != nil {
			return nil, err
		}
		return server.New(
			do.MustInvoke[*config.Config](i).Addr,
			synth,
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	return injector
}
