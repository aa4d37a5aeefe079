//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/instrument"
	"torus-life/internal/telemetry"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	err = telemetry.Run(context.Background(), "life", cfg.Telemetry(), func(ctx context.Context) error {
		sim := factory(cfg.SimConfig())
		edit, _ := sim.(app.Editable)

		timed := instrument.NewTimed(ctx, sim, log.New(os.Stderr, "life: ", log.LstdFlags)).LogEvery(cfg.LogEvery)
		game := app.New(timed, edit, cfg)

		ebiten.SetWindowTitle("torus-life — " + cfg.Pattern.String())
		tps := cfg.TPS
		if tps == 0 {
			tps = ebiten.SyncWithFPS
		}
		ebiten.SetTPS(tps)
		ebiten.SetWindowSize(game.Layout(0, 0))

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
