package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/alecthomas/kong"

	"github.com/randomouscrap98/gounlif/lif"
)

var cli struct {
	Infile string `arg:"" type:"existingfile" help:"The lif file to scan"`
	Width  int    `default:"1600" help:"Image width in pixels (for the record count)"`
	Height int    `default:"1200" help:"Image height in pixels (for the record count)"`
}

// Scan a lif file and list every MemBlock marker, without writing anything
func main() {
	kong.Parse(&cli,
		kong.Name("findmarkers"),
		kong.Description("List the memory block markers in a LIF file and how many images each would extract"),
	)
	geometry := lif.DefaultGeometry()
	geometry.Width = cli.Width
	geometry.Height = cli.Height

	found := 0
	fmt.Printf("%-8s %-14s %-14s %-14s %s\n", "Block", "Offset", "DataStart", "Span", "Records")
	err := lif.ScanFile(cli.Infile, geometry, func(span lif.Span) {
		found++
		fmt.Printf("%-8d %-14d %-14d %-14d %d\n", span.Block, span.Offset, span.DataStart, span.Length, span.Records)
	}, nil)

	var readErr *lif.ReadError
	if errors.As(err, &readErr) && readErr.IsEndOfInput() {
		log.Printf("Found %d markers in %d bytes\n", found, readErr.Offset)
		return
	}
	log.Fatalf("%s - Couldn't scan: %s", cli.Infile, err)
}
