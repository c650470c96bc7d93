package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/slope-visualization/internal/chime"
	"github.com/iburimskiy/slope-visualization/internal/config"
	"github.com/iburimskiy/slope-visualization/internal/game"
	"github.com/iburimskiy/slope-visualization/internal/notify"
	"github.com/iburimskiy/slope-visualization/internal/sketch"
)

func main() {
	// A bad argument is never fatal: Parse falls back to the defaults.
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Println("This is the error: " + err.Error())
		fmt.Println(config.Usage)
	}

	fmt.Printf("\nRunning app with these variables...\n"+
		"pointScatter: %d\n"+
		"frameRate: %d\n"+
		"slope: %g\n"+
		"numberOfPoints: %d\n"+
		"windowSize: %d\n\n",
		cfg.PointScatter, cfg.FrameRate(), cfg.Slope, cfg.NumberOfPoints, cfg.WindowSize)

	logger := log.New(os.Stdout, "", log.LstdFlags)
	opts := []sketch.Option{sketch.WithLogger(logger)}
	if cfg.Sound {
		opts = append(opts, sketch.WithListener(chime.New(logger)))
	}
	if cfg.Notify {
		opts = append(opts, sketch.WithListener(notify.New(logger)))
	}

	if err := game.Run(cfg, sketch.New(cfg, opts...)); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
