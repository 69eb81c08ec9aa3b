package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()
	defer glog.Flush()

	// Create and start web server
	webServer := server.NewServer(*port)

	glog.Infof("Whitted Raytracer Web Server")
	glog.Infof("Try http://localhost:%d/api/render?scene=glass&aa=2", *port)

	if err := webServer.Start(); err != nil {
		glog.Errorf("Error starting server: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
