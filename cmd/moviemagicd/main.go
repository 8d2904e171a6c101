package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/vmunix/moviemagic/internal/config"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: discovered)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	initPath := flag.String("init", "", "Write a default config to this path and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("moviemagicd %s\n", version)
		os.Exit(0)
	}

	if *initPath != "" {
		if err := config.WriteDefault(*initPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *initPath)
		os.Exit(0)
	}

	if err := runServer(*configPath); err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "config error in %s\n", cfgErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
