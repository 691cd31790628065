// Command track-overlay subscribes to the camera's consolidated-track
// bus and draws each finished track's trajectory on the video overlay,
// coloured by the object's classification.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/banshee-data/track-overlay/internal/bridge"
	"github.com/banshee-data/track-overlay/internal/bus"
	"github.com/banshee-data/track-overlay/internal/monitoring"
	"github.com/banshee-data/track-overlay/internal/overlay"
	"github.com/banshee-data/track-overlay/internal/pipeline"
	"github.com/banshee-data/track-overlay/internal/version"
)

var (
	redisAddr   = flag.String("redis", "localhost:6379", "Address of the track event bus")
	topic       = flag.String("topic", bus.DefaultConfig().Topic, "Bus topic carrying consolidated track events")
	source      = flag.String("source", bus.DefaultConfig().Source, "Video source the topic is scoped to")
	overlayAddr = flag.String("overlay", "ws://localhost:9000/overlay", "WebSocket URL of the overlay drawing agent")
	devMode     = flag.Bool("dev", false, "Draw to a logging surface instead of the overlay agent")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("track-overlay %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	monitoring.SetDebug(*debug)

	var surface overlay.Surface
	if *devMode {
		surface = &overlay.Mock{Verbose: true}
	} else {
		client, err := overlay.Dial(*overlayAddr)
		if err != nil {
			log.Fatalf("failed to connect to overlay agent: %v", err)
		}
		defer client.Close()
		surface = client
	}

	renderer := overlay.NewRenderer(surface)

	// Clear once at startup. Each committed path afterwards replaces
	// the previous frame's content; there is no per-message clear.
	if err := renderer.Clear(); err != nil {
		log.Fatalf("failed to clear overlay: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer rdb.Close()

	br := bridge.New()
	sub := bus.NewSubscriber(rdb, bus.Config{Topic: *topic, Source: *source}, br.HandleRaw)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := sub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("bus subscription terminated: %v", err)
		}
		log.Print("subscriber routine terminated")
	}()

	loop := pipeline.New(br, renderer)
	err := loop.Run(ctx)

	stop()
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("render loop failed: %v", err)
	}
	log.Printf("Graceful shutdown complete")
}
