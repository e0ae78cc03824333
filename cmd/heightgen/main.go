// heightgen is a CLI utility for creating and inspecting raw height maps.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/Faultbox/waterscape/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "info":
		cmdInfo(args)
	case "preview":
		cmdPreview(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`heightgen - raw height map utility

Usage:
  heightgen <command> [options]

Commands:
  generate [flags]               Write a Perlin noise height map
  info <file.raw>                Show dimensions and height range
  preview <file.raw> <out.png>   Write a grayscale PNG of a height map

Examples:
  heightgen generate -out data/heightmap.raw -width 256 -height 256 -seed 7
  heightgen generate -island -out island.raw
  heightgen info data/heightmap.raw
  heightgen preview data/heightmap.raw preview.png`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	opts := defaultOptions()
	out := fs.String("out", "heightmap.raw", "Output file")
	fs.IntVar(&opts.Width, "width", opts.Width, "Samples along X")
	fs.IntVar(&opts.Height, "height", opts.Height, "Samples along Y")
	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "Noise seed")
	fs.Float64Var(&opts.Alpha, "alpha", opts.Alpha, "Noise persistence divisor")
	fs.Float64Var(&opts.Beta, "beta", opts.Beta, "Noise frequency multiplier")
	var octaves int
	fs.IntVar(&octaves, "octaves", int(opts.Octaves), "Noise octaves")
	fs.Float64Var(&opts.Scale, "scale", opts.Scale, "Noise frequency per sample")
	fs.BoolVar(&opts.Island, "island", opts.Island, "Fade the edges down to zero")
	fs.Parse(args)
	opts.Octaves = int32(octaves)

	samples, err := generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := formats.EncodeHeightmap(opts.Width, opts.Height, samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d, %d bytes)\n", *out, opts.Width, opts.Height, len(data))
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: heightgen info <file.raw>")
		os.Exit(1)
	}

	// Max height 255 reports the raw byte range.
	hm, err := formats.ParseHeightmapFile(args[0], 255)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lo, hi := hm.Range()
	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Dimensions: %d x %d\n", hm.Width, hm.Height)
	fmt.Printf("Samples:    %d\n", len(hm.Samples))
	fmt.Printf("Byte range: %.0f - %.0f\n", lo, hi)
}

func cmdPreview(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: heightgen preview <file.raw> <out.png>")
		os.Exit(1)
	}

	hm, err := formats.ParseHeightmapFile(args[0], 255)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img := image.NewGray(image.Rect(0, 0, hm.Width, hm.Height))
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			// Row 0 is the south edge of the terrain; draw it at the bottom.
			img.SetGray(x, hm.Height-1-y, color.Gray{Y: uint8(hm.At(x, y))})
		}
	}

	f, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", args[1])
}
