// Command life-run steps a simulation without a window and reports its
// population, optionally profiling the run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/instrument"
	"torus-life/internal/render"
	"torus-life/internal/telemetry"
	simcore "torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"

	"github.com/pkg/profile"
)

type populator interface {
	Generation() int
	Population() int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg := app.NewConfig()
	cfg.TPS = 0
	if err := cfg.LoadEnv(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	cfg.Bind(fs)
	steps := fs.Int("steps", 100, "generations to simulate")
	every := fs.Int("every", 10, "report every n generations (0 reports only the last)")
	mode := fs.String("profile", "", "profile the run: cpu or mem")
	profileDir := fs.String("profile-dir", ".", "directory for profile output")
	dump := fs.Bool("dump", false, "print the final grid")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", *steps)
	}

	factory, ok := simcore.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}

	return telemetry.Run(ctx, "life-run", cfg.Telemetry(), func(ctx context.Context) error {
		if *mode != "" {
			p, err := startProfile(*mode, *profileDir)
			if err != nil {
				return err
			}
			defer p.Stop()
		}

		sim := factory(cfg.SimConfig())
		timed := instrument.NewTimed(ctx, sim, log.New(os.Stderr, "life-run: ", log.LstdFlags)).LogEvery(cfg.LogEvery)
		pacer := core.NewPacer(cfg.TPS)

		report(out, sim, 0)
		for i := 1; i <= *steps; i++ {
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
			timed.Step()
			if (*every > 0 && i%*every == 0) || i == *steps {
				report(out, sim, i)
			}
		}
		fmt.Fprintf(out, "%d steps, mean step %v\n", timed.Steps(), timed.Mean())

		if *dump {
			size := sim.Size()
			return render.WriteText(out, sim.Cells(), size.W, size.H, '#', '.')
		}
		return nil
	})
}

func report(out io.Writer, sim simcore.Sim, step int) {
	if p, ok := sim.(populator); ok {
		fmt.Fprintf(out, "gen %d population %d\n", p.Generation(), p.Population())
		return
	}
	fmt.Fprintf(out, "gen %d\n", step)
}

func startProfile(mode, dir string) (interface{ Stop() }, error) {
	var kind func(*profile.Profile)
	switch mode {
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
}
