package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/mjn33/complexplanet"
)

var (
	seedStr    string = "0"
	projection string = "cube"
	widthStr   string = "1024"
	formatStr  string = "greyscale8"
	configPath string = ""
	outDir     string = "."
)

func init() {
	flag.StringVar(&seedStr, "seed", seedStr, "the planet seed")
	flag.StringVar(&projection, "type", projection, "projection type: cube or rect")
	flag.StringVar(&widthStr, "width", widthStr, "image width in pixels")
	flag.StringVar(&formatStr, "format", formatStr, "pixel format: greyscale8, greyscale16, colour24 or terrain")
	flag.StringVar(&configPath, "config", configPath, "optional YAML config file with terrain parameter overrides")
	flag.StringVar(&outDir, "out", outDir, "output directory")
}

func main() {
	flag.Parse()

	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("invalid seed %q: %v", seedStr, err)
	}
	width, err := strconv.Atoi(widthStr)
	if err != nil {
		log.Fatalf("invalid width %q: %v", widthStr, err)
	}
	format, err := complexplanet.ParseFormat(formatStr)
	if err != nil {
		log.Fatal(err)
	}

	cfg := complexplanet.DefaultConfig()
	if configPath != "" {
		c, err := complexplanet.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	planet, err := complexplanet.NewPlanet(seed, &cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch projection {
	case "cube":
		log.Printf("rendering cube map: seed=%d width=%d format=%s", seed, width, format)
		if err := complexplanet.WriteCube(planet, width, format, outDir); err != nil {
			log.Fatal(err)
		}
	case "rect":
		log.Printf("rendering equirectangular map: seed=%d width=%d format=%s", seed, width, format)
		if err := complexplanet.WriteRect(planet, width, format, outDir); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown projection type %q: want cube or rect", projection)
	}
}
