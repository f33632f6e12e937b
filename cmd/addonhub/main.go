package main

import (
	"fmt"
	"os"

	"github.com/addonhub/addonhub/internal/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "init":
		err = cmd.Init(os.Args[2:], os.Stdout)
	case "list":
		err = cmd.List(os.Args[2:], os.Stdout, os.Stderr)
	case "install":
		err = cmd.Install(os.Args[2:], os.Stdout, os.Stderr)
	case "remove":
		err = cmd.Remove(os.Args[2:], os.Stdout, os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: addonhub <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  init [--reinit]           Configure the panel server URL and token")
	fmt.Fprintln(os.Stderr, "  list                      Show installed behavior and resource packs")
	fmt.Fprintln(os.Stderr, "  install <file.mcaddon>    Upload and install an addon archive")
	fmt.Fprintln(os.Stderr, "  remove [--all] [names]    Remove addons (interactive when no names given)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "ADDONHUB_TOKEN overrides the token from ~/.config/addonhub/config.yaml")
}
