// spheretool inspects presets, meshes and the noise field without opening a
// window.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "presets", "ls":
		return cmdPresets(args, out)
	case "mesh":
		return cmdMesh(args, out)
	case "noise":
		return cmdNoise(args, out)
	case "simulate", "sim":
		return cmdSimulate(args, out)
	case "init":
		return cmdInit(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `spheretool - SuperSphere parameter and mesh utility

Usage:
  spheretool <command> [options]

Commands:
  presets [file]                  List built-in presets, plus those in file
  mesh <base> <detail>            Show vertex and triangle counts for a mesh
  noise [options] <x> <y> <z>     Sample the displacement noise at a point
  simulate [options]              Run the animation loop without a window
  init [-force] [path]            Write a default config file

Examples:
  spheretool presets extra.toml
  spheretool mesh icosahedron 18
  spheretool noise -freq 1.5 -time 2 -- -0.3 0.1 0.9
  spheretool simulate -preset slow -frames 120 -set texture=gold -set speed=2`)
}

// usage prints a one-line usage message and returns errUsage.
func usage(line string) error {
	fmt.Fprintln(os.Stderr, "Usage: spheretool "+line)
	return errUsage
}
