package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"vex0.dev/go/httpd/httpd"
	"vex0.dev/go/httpd/internal/obs"
)

func main() {
	dir := "./"
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		// Only --directory is recognized; everything else is ignored.
		if args[i] == "--directory" && i+1 < len(args) {
			dir = args[i+1]
			i++
		}
	}

	logger := obs.StdLogger{L: log.New(os.Stderr, "httpd ", log.LstdFlags), Min: obs.Info}
	s := &httpd.Server{
		Store:  httpd.DirStore{Root: dir},
		Logger: logger,
	}
	go func() {
		if err := s.ListenAndServe(); err != nil {
			log.Fatalf("listen on %s: %v", httpd.DefaultAddr, err)
		}
	}()
	logger.Logf(obs.Info, "serving %s on %s", dir, httpd.DefaultAddr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	_ = s.Close()
	logger.Logf(obs.Info, "server stopped")
}
