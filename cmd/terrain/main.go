// Command terrain analyzes a recorded map snapshot and prints a summary of
// its areas, deposits and, optionally, suggested building placements.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/terrain/analyzer"
	"github.com/katalvlaran/terrain/config"
	"github.com/katalvlaran/terrain/heatmap"
	"github.com/katalvlaran/terrain/monitoring"
	"github.com/katalvlaran/terrain/snapshot"
	"github.com/katalvlaran/terrain/store"
)

var (
	snapshotPath = flag.String("snapshot", "", "Path to the snapshot JSON file (required)")
	configPath   = flag.String("config", "", "Path to a tuning JSON file (optional)")
	dbPath       = flag.String("db", "", "SQLite database for the region cache and run log (optional)")
	plotPath     = flag.String("plot", "", "Write a PNG heat map of the regions to this path (optional)")
	place        = flag.String("place", "", "Comma-separated structure types to place (optional)")
	quiet        = flag.Bool("quiet", false, "Suppress diagnostic logging")
)

func main() {
	flag.Parse()

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "terrain: -snapshot is required")
		flag.Usage()
		os.Exit(2)
	}
	if *quiet {
		monitoring.SetLogger(nil)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	file, err := snapshot.Load(*snapshotPath)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	var opts []analyzer.Option
	if *dbPath != "" {
		db, err := store.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		opts = append(opts, analyzer.WithCache(db), analyzer.WithRecorder(db))
	}

	md, err := analyzer.New(cfg, opts...).Initial(file.Start, file.Frame, file.Types)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	printSummary(md)

	if *place != "" {
		for _, t := range strings.Split(*place, ",") {
			t = strings.TrimSpace(t)
			p, err := md.PlaceType(snapshot.UnitType(t))
			if err != nil {
				fmt.Printf("place %s: %v\n", t, err)
				continue
			}
			fmt.Printf("place %s: origin (%d,%d) center (%.1f,%.1f) depth %d\n",
				t, p.Origin.X, p.Origin.Y, p.Center.X, p.Center.Y, p.Depth)
		}
	}

	if *plotPath != "" {
		if err := heatmap.Save(md.Graph, md.Deposits, "regions "+md.Key[:12], *plotPath); err != nil {
			log.Fatalf("Failed to write heat map: %v", err)
		}
		monitoring.Logf("terrain: wrote %s", *plotPath)
	}
}

func printSummary(md *analyzer.MapData) {
	fmt.Printf("map %s: %dx%d, %d regions\n", md.Key[:12], md.Grid.Width, md.Grid.Bounds.Height, md.Regions.Count())
	for _, a := range md.Graph.Areas() {
		switch {
		case a.IsMesa():
			fmt.Printf("  %3d mesa  height %3d  tiles %5d  neighbors %v\n", a.ID, a.Height, len(a.Tiles), a.Neighbors)
		case a.IsRamp():
			fmt.Printf("  %3d ramp  %d -> %d  tiles %5d\n", a.ID, a.Bottom, a.Top, len(a.Tiles))
		default:
			fmt.Printf("  %3d edge  mesas %v  tiles %5d\n", a.ID, a.Mesas, len(a.Tiles))
		}
	}
	fmt.Printf("elevation order: %v\n", md.Graph.ElevationOrder())
	for i, d := range md.Deposits {
		fmt.Printf("deposit %d: area %d center (%d,%d) %d resources, %d geysers\n",
			i, d.Area, d.Center.X, d.Center.Y, len(d.Resources), len(d.Geysers()))
	}
	fmt.Printf("controlled deposits: %d\n", len(md.ControlledDeposits(md.MainBases())))
}
