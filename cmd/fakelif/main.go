package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/randomouscrap98/gounlif/lif"
)

var cli struct {
	Outfile string `arg:"" type:"path" help:"Where to write the fake lif file"`
	Blocks  int    `default:"3" help:"Number of memory blocks"`
	Images  int    `default:"2" help:"Images per memory block"`
	FirstId uint16 `default:"1" help:"Block id of the first block (the rest count up)"`
	Width   int    `default:"1600" help:"Image width in pixels"`
	Height  int    `default:"1200" help:"Image height in pixels"`
}

// Write a file shaped enough like a LIF that unlif extracts exactly the
// images put into it. Image data is a very obvious ramp.
func main() {
	kong.Parse(&cli,
		kong.Name("fakelif"),
		kong.Description("Generate a synthetic LIF file for testing unlif"),
	)
	geometry := lif.DefaultGeometry()
	geometry.Width = cli.Width
	geometry.Height = cli.Height
	if err := geometry.Validate(); err != nil {
		log.Fatalln("Error: bad geometry: ", err)
	}

	blocks := make([]lif.SyntheticBlock, cli.Blocks)
	for i := range blocks {
		blocks[i] = lif.SyntheticBlock{Id: cli.FirstId + uint16(i), Images: cli.Images}
	}

	var data bytes.Buffer
	length, err := lif.WriteSynthetic(&data, &geometry, lif.SyntheticFiller(&geometry, cli.Images), blocks)
	if err != nil {
		log.Fatalln("Error generating data: ", err)
	}
	if err := os.WriteFile(cli.Outfile, data.Bytes(), 0644); err != nil {
		log.Fatalln("Error writing file: ", err)
	}
	log.Printf("Wrote %d blocks of %d images to %s\n", cli.Blocks, cli.Images, cli.Outfile)

	result := make(map[string]interface{})
	result["Filename"] = cli.Outfile
	result["Length"] = length
	result["Blocks"] = blocks
	result["MD5"] = lif.Md5String(data.Bytes())
	rawjson, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalln("Couldn't serialize json: ", err)
	}
	fmt.Println(string(rawjson))
}
