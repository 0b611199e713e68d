package main

import (
	"flag"
	"io"
	"log"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config.toml")
	quiet := flag.Bool("quiet", false, "discard log output")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting FreehandBoard")
	ui.RunApp(cfg)
}
