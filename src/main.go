package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"liftsim/src/config"
	"liftsim/src/sim"
	"liftsim/src/types"
	"liftsim/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	floors := flag.Int("floors", 0, "Number of floors (overrides config)")
	elevators := flag.Int("elevators", 0, "Number of elevators (overrides config)")
	seed := flag.Int64("seed", 0, "Traffic RNG seed (overrides config)")
	duration := flag.Duration("duration", 2*time.Minute, "How long to run")
	interactive := flag.Bool("interactive", false, "Place hall calls from the keyboard instead of generated traffic")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	if err := utils.InitLogger("liftsim.log", level); err != nil {
		fmt.Fprintln(os.Stderr, "could not open log file:", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("Could not load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}
	if *floors > 0 {
		cfg.NumFloors = *floors
	}
	if *elevators > 0 {
		cfg.NumElevators = *elevators
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *interactive {
		cfg.TrafficPerMinute = 0
	}

	world, err := sim.NewWorld(cfg)
	if err != nil {
		slog.Error("Could not build world", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	calls := make(chan types.HallCall)
	if *interactive {
		fmt.Println("Keys: digit selects a floor, 'u'/'d' places the call, 'q' quits")
		go sim.ListenKeyboard(cfg.NumFloors, calls, cancel)
		world.SetRenderInterval(200 * time.Millisecond)
	}

	slog.Info("Simulation starting",
		"floors", cfg.NumFloors,
		"elevators", cfg.NumElevators,
		"trafficPerMinute", cfg.TrafficPerMinute,
		"seed", cfg.Seed)

	world.Run(ctx, calls)

	fmt.Println(world.Stats().Summary())
}
