package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/slotvec/slot"
)

type payload struct {
	Seq    int
	Weight float64
}

// sink keeps the iteration work observable so the compiler cannot
// discard it.
var sink float64

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	itemCount := flag.Int("items", 100000, "The steady-state number of live values.")
	churn := flag.Int("churn", 1000, "Values removed and reinserted per tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting slab stress test...")

	// 1. Populate the arena to steady state
	arena := slot.NewArena[payload]()
	handles := make([]slot.Handle, *itemCount)
	seq := 0
	log.Printf("Populating arena with %d values...\n", *itemCount)
	for i := range handles {
		handles[i] = arena.Insert(payload{Seq: seq, Weight: rand.Float64()})
		seq++
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Items:          *itemCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Churn loop: every tick removes and reinserts `churn` values,
	// then walks the whole arena once.
	log.Printf("Running churn loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()

			for j := 0; j < *churn; j++ {
				i := rand.Intn(len(handles))
				arena.Remove(handles[i])
				handles[i] = arena.Insert(payload{Seq: seq, Weight: rand.Float64()})
				seq++
			}

			var sum float64
			for _, v := range arena.All() {
				sum += v.Weight
			}
			sink = sum

			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn loop finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
