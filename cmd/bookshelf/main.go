package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eringen/bookshelf"
	"github.com/eringen/bookshelf/index"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := bookshelf.ConfigFromEnv()

	switch os.Args[1] {
	case "build":
		if err := runBuild(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "covers":
		dir := "static/covers"
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		if err := bookshelf.ProcessCovers(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("bookshelf %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runBuild(cfg bookshelf.Config) error {
	cfg = cfg.WithDefaults()
	idx, err := index.Build(cfg.BooksDir)
	if err != nil {
		return err
	}
	if err := index.WriteIndex(idx, cfg.IndexPath); err != nil {
		return err
	}
	log.Printf("bookshelf: indexed %d books into %s", len(idx.Books), cfg.IndexPath)
	return nil
}

func runServe(cfg bookshelf.Config) error {
	// Rebuild before serving so the site always reflects the markdown on
	// disk at startup.
	if err := runBuild(cfg); err != nil {
		return err
	}
	app := bookshelf.New(cfg)
	return app.Start()
}

func printUsage() {
	fmt.Println(`bookshelf - A personal reading library built with Go, Echo, and templ

Usage:
  bookshelf <command> [arguments]

Commands:
  build           Validate the markdown books and write the JSON index
  serve           Build the index and start the web server
  covers [dir]    Downscale oversized cover images (default static/covers)
  version         Print the bookshelf version
  help            Show this help message

Configuration is read from environment variables: SITE_NAME, SITE_URL,
SITE_DESCRIPTION, SITE_AUTHOR, ADDR, BOOKS_DIR, INDEX_PATH, STATIC_DIR.`)
}
