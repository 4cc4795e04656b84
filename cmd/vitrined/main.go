// Command vitrined serves the demo product catalog over HTTP so the vitrine
// browser can run with an interchangeable network fetch source.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/vitrine/internal/catalog"
	"github.com/tinytelemetry/vitrine/internal/httpserver"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// demoSource serves the built-in catalog.
type demoSource struct{}

func (demoSource) Items() []catalog.Item { return catalog.Demo() }

func main() {
	var addr string
	var showVersion bool

	flag.StringVar(&addr, "addr", catalog.DefaultServerAddr, "listen address for the catalog API")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Vitrined - Catalog Service\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	if err := run(addr); err != nil {
		log.Fatalf("vitrined: %v", err)
	}
}

func run(addr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := httpserver.NewServer(addr, demoSource{})
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting catalog API: %w", err)
	}
	log.Printf("vitrined: serving catalog API on %s", srv.Addr())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("vitrined: errgroup exited with error: %v", err)
	}

	fmt.Fprintln(os.Stderr, "\nShutting down gracefully...")
	if err := srv.Stop(); err != nil {
		return fmt.Errorf("stopping catalog API: %w", err)
	}
	return nil
}
