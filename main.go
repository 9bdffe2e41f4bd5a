package main

import (
	"fmt"
	"os"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/dispatch"
	"github.com/asvard/gotrace/pkg/ppm"
	"github.com/asvard/gotrace/pkg/sceneio"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <scene.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scenePath string) error {
	loaded, err := sceneio.Load(scenePath)
	if err != nil {
		return err
	}

	logger := core.NewStderrLogger(os.Stderr)
	image := dispatch.Render(loaded.Scene, loaded.ImageWidth, loaded.ImageHeight, loaded.SamplesPerPixel, loaded.MaxDepth, dispatch.Options{
		Logger: logger,
	})
	fmt.Fprintln(os.Stderr)

	if err := ppm.Write(os.Stdout, image); err != nil {
		return err
	}
	return nil
}
