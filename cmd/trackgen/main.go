// Command trackgen publishes synthetic consolidated-track events to the
// bus. It is a development aid for exercising the overlay pipeline
// without a live analytics source.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/banshee-data/track-overlay/internal/bus"
	"github.com/banshee-data/track-overlay/internal/track"
)

var (
	redisAddr = flag.String("redis", "localhost:6379", "Address of the track event bus")
	topic     = flag.String("topic", bus.DefaultConfig().Topic, "Bus topic to publish on")
	source    = flag.String("source", bus.DefaultConfig().Source, "Video source the topic is scoped to")
	count     = flag.Int("count", 10, "Number of tracks to publish")
	interval  = flag.Duration("interval", time.Second, "Delay between tracks")
	points    = flag.Int("points", 25, "Observations per track")
	class     = flag.String("class", string(track.ClassCar), "Object class for the tracks")
	open      = flag.Bool("open", false, "Publish in-progress records without an end time")
)

func main() {
	flag.Parse()

	classType := track.ClassType(*class)
	if !classType.Valid() {
		names := make([]string, len(track.AllClassTypes))
		for i, c := range track.AllClassTypes {
			names[i] = string(c)
		}
		log.Fatalf("unknown class %q, valid classes: %s", *class, strings.Join(names, ", "))
	}
	if *points < 1 {
		log.Fatal("points must be at least 1")
	}

	cfg := bus.Config{Topic: *topic, Source: *source}
	rdb := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer rdb.Close()

	ctx := context.Background()
	for i := 0; i < *count; i++ {
		rec := makeTrack(*points, classType, *open)
		data, err := json.Marshal(rec)
		if err != nil {
			log.Fatalf("failed to marshal track: %v", err)
		}
		if err := rdb.Publish(ctx, cfg.Channel(), data).Err(); err != nil {
			log.Fatalf("failed to publish track: %v", err)
		}
		log.Printf("published %s track %s with %d observations", classType, rec.ID, len(rec.Observations))

		if i < *count-1 {
			time.Sleep(*interval)
		}
	}
}

// makeTrack builds a record whose object slides left to right along the
// lower half of the frame at ten observations per second.
func makeTrack(points int, class track.ClassType, open bool) *track.Record {
	const frameStep = 100 * time.Millisecond

	start := time.Now().UTC()
	observations := make([]track.Observation, points)
	for i := range observations {
		progress := 0.0
		if points > 1 {
			progress = float64(i) / float64(points-1)
		}
		left := 0.1 + 0.7*progress
		observations[i] = track.Observation{
			BoundingBox: track.BoundingBox{
				Top:    0.5,
				Left:   left,
				Right:  left + 0.1,
				Bottom: 0.75,
			},
			Timestamp: start.Add(time.Duration(i) * frameStep).Format(time.RFC3339Nano),
		}
	}

	rec := &track.Record{
		ID:           uuid.NewString(),
		StartTime:    start.Format(time.RFC3339Nano),
		Duration:     (time.Duration(points-1) * frameStep).Seconds(),
		Observations: observations,
		Classes: []track.Classification{
			{Type: class, Score: 0.9, Colors: []track.ClassColor{}},
		},
	}
	if !open {
		end := start.Add(time.Duration(points-1) * frameStep).Format(time.RFC3339Nano)
		rec.EndTime = &end
	}
	return rec
}
