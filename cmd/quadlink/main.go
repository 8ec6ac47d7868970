// cmd/quadlink/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/klaussner/quadlink/internal/config"
	"github.com/klaussner/quadlink/internal/input"
	"github.com/klaussner/quadlink/internal/link"
	"github.com/klaussner/quadlink/internal/recorder"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var configPath string
	flag.StringVar(&configPath, "c", "", "Path to the configuration file")
	flag.Parse()

	// No config file means factory defaults: neutral frames keep the
	// link alive, useful for bench checks without a joystick.
	cfg := &config.Config{}
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			logger.Error(err.Error(), slog.String("path", configPath))
			os.Exit(1)
		}
	}

	if err := config.Validate(cfg); err != nil {
		logger.Error(fmt.Sprintf("config validation failed: %s", err))
		os.Exit(1)
	}
	config.Normalize(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(err.Error())

		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	droneAddr := net.JoinHostPort(cfg.Link.Address, strconv.Itoa(cfg.Link.Port))

	// --------------------
	// Network sink
	// --------------------

	sink, err := link.DialUDP(
		cfg.Link.Address,
		cfg.Link.Port,
		time.Duration(cfg.Link.WriteTimeoutMs)*time.Millisecond,
	)
	if err != nil {
		return err
	}
	defer sink.Close()

	// --------------------
	// Input side
	// --------------------

	mapper := input.Build(cfg.Input)

	if cfg.Input.Device != "" {
		js, err := input.OpenJoystick(cfg.Input.Device)
		if err != nil {
			logger.Warn("joystick unavailable, transmitting neutral state",
				slog.String("device", cfg.Input.Device),
				slog.Any("err", err))
		} else {
			defer js.Close()
			go func() {
				if err := js.Run(mapper); err != nil && ctx.Err() == nil {
					logger.Warn("joystick input stopped, last state persists",
						slog.Any("err", err))
				}
			}()
		}
	}

	// --------------------
	// Flight recorder (optional)
	// --------------------

	var rec *recorder.Recorder
	if cfg.Recording.Path != "" {
		if rec, err = recorder.Open(cfg.Recording.Path, droneAddr); err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Warn("recorder close failed", slog.Any("err", err))
			}
			logger.Info("session recorded",
				slog.Int64("session", rec.SessionID()),
				slog.String("frames", humanize.Comma(int64(rec.Frames()))),
				slog.String("dropped", humanize.Comma(int64(rec.Dropped()))))
		}()
	}

	// --------------------
	// Transmission loop
	// --------------------

	sched, err := link.New(
		link.Config{Interval: time.Duration(cfg.Link.IntervalMs) * time.Millisecond},
		mapper,
		sink,
	)
	if err != nil {
		return err
	}

	out := make(chan link.TickResult, 8)
	go sched.Run(ctx, out)

	logger.Info("control link up",
		slog.String("drone", droneAddr),
		slog.Int("interval_ms", cfg.Link.IntervalMs))

	var sent uint64
	consecutive := 0

	for {
		select {
		case <-ctx.Done():
			logger.Info("control link down",
				slog.String("frames", humanize.Comma(int64(sent))))
			return nil

		case res := <-out:
			// Every encoded frame advances the counter chain, so it
			// is recorded whether or not the send made it out.
			sent++
			if rec != nil {
				rec.Record(res.At, res.Frame)
			}

			if res.Err == nil {
				consecutive = 0
				continue
			}

			consecutive++
			logger.Error("transport failure",
				slog.Any("err", res.Err),
				slog.Int("consecutive", consecutive))

			if max := cfg.Link.MaxConsecutiveFailures; max > 0 && consecutive >= max {
				return fmt.Errorf("giving up after %d consecutive transport failures", consecutive)
			}
		}
	}
}
