package main

import (
	"flag"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/web/server"
)

var logger = log.New("web")

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of JSON scene files")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.Debug)
	}

	webServer := server.NewServer(*port, *scenesDir)

	logger.Noticef("Whitted Raytracer Web Server")
	logger.Noticef("Visit http://localhost:%d/api/scenes to list scenes", *port)

	if err := webServer.Start(); err != nil {
		logger.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
