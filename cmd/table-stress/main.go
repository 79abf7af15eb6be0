package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/entable/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create per table.")
	churn := flag.Float64("churn", 0.25, "Fraction of entities replaced per update.")
	sortEvery := flag.Int("sort-every", 64, "Sort and pack all tables every N updates (0 disables).")
	seed := flag.Int64("seed", 1, "Seed of the churn's random source.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting table stress test...")

	rng := rand.New(rand.NewSource(*seed))
	var allocator ecs.EntityAllocator
	tables := NewGeneratedTables()

	// Populate every table with the same initial entity range
	log.Printf("Populating %d tables with %d entities each...\n", len(tables), *entityCount)
	initial := allocator.AddRange(ecs.EntityIndex(*entityCount))
	live := make([]ecs.Entity, 0, *entityCount*2)
	for entity := initial.Begin; entity != initial.End; entity++ {
		live = append(live, entity)
	}
	for _, table := range tables {
		table.SpawnRange(initial)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Tables:         len(tables),
		Components:     componentCount,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn for %s...\n", *duration)
	deadline := time.Now().Add(*duration)
	startTime := time.Now()
	var totalUpdates int64

	for time.Now().Before(deadline) {
		updateStart := time.Now()

		// Replace a fraction of the live set
		replaced := int(float64(len(live)) * *churn)
		for i := 0; i < replaced; i++ {
			pick := rng.Intn(len(live))
			entity := live[pick]
			for _, table := range tables {
				table.Despawn(entity)
			}
			allocator.Remove(entity)

			fresh := allocator.Add()
			live[pick] = fresh
			for _, table := range tables {
				table.Spawn(fresh)
			}
		}

		if *sortEvery > 0 && totalUpdates%int64(*sortEvery) == 0 {
			for _, table := range tables {
				table.SortByEntity()
				table.Pack()
			}
		}

		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		totalUpdates++
	}

	report.TotalUpdates = totalUpdates
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	for _, table := range tables {
		report.TableStats = append(report.TableStats, NamedStats{Name: table.Name(), Stats: table.Stats()})
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress test complete, generating report...")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}
}
