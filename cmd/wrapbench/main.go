package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kpauljoseph/wrapbench/internal/config"
	"github.com/kpauljoseph/wrapbench/internal/experiment"
	"github.com/kpauljoseph/wrapbench/internal/output"
	"github.com/kpauljoseph/wrapbench/internal/paragraphs"
	"github.com/kpauljoseph/wrapbench/internal/pdf"
	"github.com/kpauljoseph/wrapbench/pkg/logger"
	"github.com/kpauljoseph/wrapbench/pkg/models"
	"github.com/kpauljoseph/wrapbench/pkg/utils"
	"github.com/kpauljoseph/wrapbench/pkg/version"
)

func main() {
	configPath := flag.String("config", "wrapbench.yaml", "path to config file (optional)")
	modes := flag.String("modes", "", "comma separated layout modes to run, e.g. 4,3 (overrides config)")
	paragraphsFile := flag.String("paragraphs", "", "YAML file with a paragraphs list (overrides config)")
	outputDir := flag.String("output-dir", "", "directory for the PDF (default: system temp dir)")
	copyTo := flag.String("copy-to", "", "offer to copy the PDF to this path when done (overrides config)")
	assumeYes := flag.Bool("yes", false, "copy without asking")
	previewDir := flag.String("preview-dir", "", "render PNG previews of every page into this directory")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	level := logger.LevelInfo
	switch {
	case *debug:
		level = logger.LevelTrace
	case *verbose:
		level = logger.LevelDebug
	}
	log := logger.New(logger.WithPrefix("[wrapbench] "), logger.WithLevel(level))
	log.Debug("%s", version.GetVersionInfo())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}

	if *modes != "" {
		parsed, err := models.ParseModes(*modes)
		if err != nil {
			log.Fatal("Error parsing -modes: %v", err)
		}
		cfg.Modes = parsed
	}
	if *paragraphsFile != "" {
		cfg.ParagraphsFile = *paragraphsFile
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *copyTo != "" {
		cfg.CopyDestination = *copyTo
	}
	if *assumeYes {
		cfg.AssumeYes = true
	}
	if *previewDir != "" {
		cfg.PreviewDir = *previewDir
	}
	cfg.CopyDestination = utils.ExpandHome(cfg.CopyDestination)

	if err := cfg.Validate(); err != nil {
		log.Fatal("%v", err)
	}

	texts := paragraphs.Default()
	if cfg.ParagraphsFile != "" {
		texts, err = paragraphs.Load(cfg.ParagraphsFile)
		if err != nil {
			log.Fatal("Error loading paragraphs: %v", err)
		}
	}
	log.Debug("Running modes %v over %d paragraphs", cfg.ModeSet().Ordered(), len(texts))

	options := []experiment.Option{
		experiment.WithCopier(output.NewCopier(cfg.CopyDestination,
			output.WithAssumeYes(cfg.AssumeYes),
			output.WithLogger(log),
		)),
	}
	if cfg.PreviewDir != "" {
		previewer, err := pdf.NewPreviewer(cfg.PreviewDir, log)
		if err != nil {
			log.Fatal("Error initializing previewer: %v", err)
		}
		options = append(options, experiment.WithPreviewer(previewer))
		log.Debug("Writing page previews to %s", previewer.OutputDir())
	}

	runner := experiment.NewRunner(cfg, log, options...)

	result, err := runner.Run(ctx, texts)
	if err != nil {
		log.Fatal("Error generating PDF: %v", err)
	}
	fmt.Printf("Output written to: %s\n", result.OutputPath)

	if err := runner.Deliver(ctx, result); err != nil {
		log.Fatal("%v", err)
	}
	if result.CopiedTo != "" {
		fmt.Printf("File copied to: %s\n", result.CopiedTo)
	}
	for _, page := range result.PreviewPages {
		fmt.Printf("Preview page %d: %s\n", page.PageNum, page.ImagePath)
	}

	log.Debug("Run complete: %d pages in %s", result.PageCount, result.EndTime.Sub(result.StartTime))
}
