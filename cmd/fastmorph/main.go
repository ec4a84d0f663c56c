package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/seung-lab/fastmorph/internal/dispatch"
	"github.com/seung-lab/fastmorph/pkg/config"
)

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Input volume file (FMVOL format)")
	outputPath := flag.String("output", "output.fmvol", "Output volume filename")
	opName := flag.String("op", "dilate", "Operation: dilate, erode, greydilate, greyerode")
	configPath := flag.String("config", "fastmorph.yaml", "YAML configuration file")
	threads := flag.Int("threads", -1, "Worker count; 0 runs synchronously (default: from config)")
	backgroundOnly := flag.Bool("background-only", true, "Dilate only into background voxels")
	erodeBorder := flag.Bool("erode-border", true, "Treat the volume rim as background during erosion")
	stats := flag.Bool("stats", false, "Report value-distribution statistics before and after")
	slicesDir := flag.String("slices", "", "Directory to save z-axis slice images of the result")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override config values.
	opts := dispatch.Options{
		BackgroundOnly: cfg.Processing.BackgroundOnly,
		ErodeBorder:    cfg.Processing.ErodeBorder,
		Threads:        cfg.Processing.Threads,
	}
	if *threads >= 0 {
		opts.Threads = *threads
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "background-only":
			opts.BackgroundOnly = *backgroundOnly
		case "erode-border":
			opts.ErodeBorder = *erodeBorder
		case "stats":
			cfg.Output.Stats = *stats
		}
	})

	op, err := dispatch.ParseOp(*opName)
	if err != nil {
		log.Fatalf("Invalid operation: %v", err)
	}

	in, dt, err := dispatch.LoadVolume(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load volume: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Loaded %s (%s, %s on disk)\n", *inputPath, dt, fileSize(*inputPath))
	}

	if cfg.Output.Stats {
		reportStats("Input", in)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Running %s with %d threads...\n", op, opts.Threads)
	}

	startTime := time.Now()
	out, err := dispatch.Apply(in, op, opts)
	if err != nil {
		log.Fatalf("%s failed: %v", op, err)
	}
	elapsed := time.Since(startTime)

	if cfg.Output.Stats {
		reportStats("Output", out)
	}

	if err := dispatch.SaveVolume(*outputPath, out); err != nil {
		log.Fatalf("Failed to save volume: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Completed %s in %.3f seconds\n", op, elapsed.Seconds())
		fmt.Printf("Result saved to: %s (%s on disk)\n", *outputPath, fileSize(*outputPath))
	}

	if *slicesDir != "" {
		if cfg.Output.Verbose {
			fmt.Printf("Saving z-axis slices to: %s\n", *slicesDir)
		}
		if err := dispatch.ExportSlices(out, "z", *slicesDir); err != nil {
			log.Printf("Warning: Failed to save slices: %v", err)
		}
	}
}

// fileSize reports a file's on-disk size, humanized.
func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown size"
	}
	return humanize.Bytes(uint64(info.Size()))
}

// reportStats prints the value-distribution summary of a volume.
func reportStats(name string, v any) {
	s, err := dispatch.Summarize(v)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	fmt.Printf("%s statistics:\n", name)
	fmt.Printf("  Voxels: %s\n", humanize.Comma(int64(s.Voxels)))
	fmt.Printf("  Foreground: %s (%.1f%%)\n",
		humanize.Comma(int64(s.Foreground)), 100*float64(s.Foreground)/float64(s.Voxels))
	fmt.Printf("  Distinct labels: %d\n", s.Labels)
	fmt.Printf("  Entropy: %.3f nats\n", s.Entropy)
}
