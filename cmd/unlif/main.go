package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/randomouscrap98/gounlif/lif"
)

const (
	AppVersion     = "1.1.0"
	DefaultConfig  = "unlif.toml"
	OutDirPermBits = 0755
)

var cli struct {
	Infile       string           `arg:"" optional:"" help:"The lif file to extract images from"`
	Outdir       string           `type:"path" short:"o" default:"." help:"Folder to write images into (created if missing)"`
	Width        int              `default:"1600" help:"Image width in pixels"`
	Height       int              `default:"1200" help:"Image height in pixels"`
	Preview      string           `help:"Also write an 8 bit preview of each image (png,jpg,gif,bmp,tiff)"`
	PreviewWidth int              `help:"Scale previews down to this width (0 for full size)"`
	Black        string           `default:"#000000" help:"Preview color for a sample of 0"`
	White        string           `default:"#FFFFFF" help:"Preview color for the max sample value"`
	Bigendian    bool             `help:"Samples are stored big endian (only matters for previews)"`
	Namescript   string           `type:"existingfile" help:"Lua script defining filename(block, index) for output names"`
	EofOk        bool             `name:"eof-ok" help:"Exit successfully once the input runs out"`
	Json         bool             `help:"Print a json summary of every extracted image at the end"`
	Quiet        bool             `short:"q" help:"Only log warnings and errors"`
	Config       kong.ConfigFlag  `help:"Load options from a toml file (keys are flag names)"`
	Version      kong.VersionFlag `help:"Show version information"`
}

func printBanner() {
	fmt.Printf(
		"Unlif version %s\n"+
			"Copyright (C) 2014 Ian Martin\n"+
			"Unlif is free software and comes with ABSOLUTELY NO WARRANTY; not even for\n"+
			"MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. For details, see LICENSE.\n"+
			"\n", AppVersion)
}

func newLogger(quiet bool) *zap.Logger {
	config := zap.NewDevelopmentConfig()
	if quiet {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't create logger: %s\n", err)
		os.Exit(lif.ExitUnspecified)
	}
	return logger
}

// Quick way to fail on setup errors, which aren't covered by the
// documented exit codes.
func fatalIfErr(logger *zap.Logger, subject string, doing string, err error) {
	if err != nil {
		logger.Fatal(fmt.Sprintf("%s - Couldn't %s", subject, doing), zap.Error(err))
	}
}

func run(ctx *kong.Context) int {
	if !cli.Json {
		printBanner()
	}
	if cli.Infile == "" {
		fmt.Printf("Please specify lif filename, for example: %s file.lif\n", ctx.Model.Name)
		_ = ctx.PrintUsage(true)
		return lif.ExitCode(&lif.ArgumentError{Message: "no input file"})
	}

	logger := newLogger(cli.Quiet)
	defer logger.Sync()

	geometry := lif.DefaultGeometry()
	geometry.Width = cli.Width
	geometry.Height = cli.Height
	fatalIfErr(logger, "geometry", "validate", geometry.Validate())

	if err := os.MkdirAll(cli.Outdir, OutDirPermBits); err != nil {
		err = &lif.OpenError{Path: cli.Outdir, Role: lif.RoleOutput, Err: err}
		fmt.Fprintln(os.Stderr, err)
		return lif.ExitCode(err)
	}

	extractor := lif.NewExtractor(cli.Infile, geometry, logger)
	extractor.OutDir = cli.Outdir
	if cli.Preview != "" {
		preview, err := lif.NewPreviewConfig(cli.Preview, cli.PreviewWidth, cli.Black, cli.White, cli.Bigendian)
		fatalIfErr(logger, "preview", "configure previews", err)
		extractor.Preview = preview
	}
	if cli.Namescript != "" {
		namer, err := lif.LoadLuaNamer(cli.Namescript)
		fatalIfErr(logger, cli.Namescript, "load name script", err)
		defer namer.Close()
		extractor.Namer = namer.Name
	}
	if !cli.Json {
		extractor.Report = func(image lif.ExtractedImage) {
			fmt.Printf("Extracted \"%s\" from offset %d.\n", image.Filename, image.Offset)
		}
	}

	images, err := lif.ExtractFile(cli.Infile, extractor, logger)
	logger.Info("extraction stopped", zap.Int("images", len(images)), zap.Error(err))
	if cli.Json {
		PrintJson(images)
	}

	var readErr *lif.ReadError
	if cli.EofOk && errors.As(err, &readErr) && readErr.IsEndOfInput() {
		return lif.ExitOk
	}
	fmt.Fprintln(os.Stderr, err)
	return lif.ExitCode(err)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("unlif"),
		kong.ShortUsageOnError(),
		kong.Description("Extracts the raw images embedded in a LIF file as individual pgm files"),
		kong.Configuration(TomlLoader, DefaultConfig),
		kong.Vars{
			"version": AppVersion,
		},
	)
	os.Exit(run(ctx))
}
