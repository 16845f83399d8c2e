package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/scene"
)

var (
	fpsFlag   = flag.Int("fps", parameter.DefaultFPS, "Frame callbacks per second")
	seedFlag  = flag.Int64("seed", 0, "Star field seed, 0 seeds from the clock")
	muteFlag  = flag.Bool("mute", false, "Start with hover chimes muted")
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("star seed %d", seed)
	sc := scene.Build(scene.DefaultPlanets(), rand.NewSource(seed))

	clock := engine.NewMonotonicTimeProvider()
	sound := audio.NewSoundManager(clock, *muteFlag)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the scene runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	collector := metrics.NewCollector()
	host, err := engine.NewHost(engine.Config{
		Screen:  screen,
		Scene:   sc,
		Clock:   clock,
		Sound:   sound,
		Metrics: collector,
		FPS:     *fpsFlag,
	})
	if err != nil {
		return err
	}
	log.Printf("running at %v per frame", host.Interval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "run")
	}

	if summary, err := collector.Summary(); err != nil {
		log.Printf("metrics: %v", err)
	} else {
		log.Printf("session after %d frames, %d chimes\n%s", host.Frames(), sound.Played(), summary)
	}
	return nil
}
