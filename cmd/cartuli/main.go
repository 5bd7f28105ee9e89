package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/kpauljoseph/cartuli/internal/config"
	"github.com/kpauljoseph/cartuli/internal/render"
	"github.com/kpauljoseph/cartuli/internal/scanner"
	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/version"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the sheet definition file or its directory")
	cards := flag.String("cards", "", "comma separated patterns, only matching cards are added to sheets")
	outputDir := flag.String("output-dir", "sheets", "directory to save sheets, relative to the definition file")
	dpi := flag.Float64("dpi", render.DefaultDPI, "resolution of the rendered pages")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	report := &Report{
		StartTime: time.Now(),
	}

	log := logger.New(logger.WithPrefix("[cartuli] "))
	log.SetVerbose(*verbose)

	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	if *verbose {
		log.Debug("Verbose logging enabled")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading sheet definition: %v", err)
	}

	var patterns []string
	if *cards != "" {
		patterns = strings.Split(*cards, ",")
	}
	filter, err := scanner.NewFilter(patterns)
	if err != nil {
		log.Fatal("Invalid card filter: %v", err)
	}

	log.Info("Loading %d decks from %s", len(cfg.Decks), cfg.Dir)
	decks, err := cfg.LoadDecks(ctx, scanner.New(log), filter)
	if err != nil {
		log.Fatal("Error loading decks: %v", err)
	}
	for name, d := range decks {
		log.Debug("Deck %s has %d cards of %s", name, d.Len(), d.Size())
	}

	sets, err := cfg.BuildSheets(decks)
	if err != nil {
		log.Fatal("Error building sheets: %v", err)
	}

	dir := *outputDir
	if !filepath.IsAbs(dir) && !strings.HasPrefix(dir, "~") {
		dir = filepath.Join(cfg.Dir, dir)
	}

	output := render.NewOutput(render.NewRasterizer(log, render.WithDPI(*dpi)), log)
	for _, set := range sets {
		if ctx.Err() != nil {
			log.Warn("Interrupted, stopping")
			break
		}

		s := set.Sheet
		if s.Len() == 0 {
			log.Debug("Skipping empty sheet %s", s.Name())
			report.SkippedSheets++
			continue
		}

		path, err := output.SheetOutput(ctx, s, filepath.Join(dir, set.FileName()))
		if err != nil {
			log.Warn("Error creating sheet %s: %v", s.Name(), err)
			report.FailedSheets++
			continue
		}

		report.Sheets = append(report.Sheets, path)
		report.TotalCards += s.Len()
		report.TotalPages += s.Pages()
	}

	report.EndTime = time.Now()
	report.Print(log)

	if report.FailedSheets > 0 || ctx.Err() != nil {
		os.Exit(1)
	}
}
