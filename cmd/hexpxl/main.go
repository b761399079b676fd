package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lab0-net/hexpxl/internal/imageio"
	"github.com/lab0-net/hexpxl/internal/pixelize"
)

func main() {
	app := cli.NewApp()

	app.Name = "hexpxl"
	app.Usage = "non-square image pixelisation tool"
	app.ArgsUsage = "SOURCE DESTINATION"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"s"},
			Value:   20,
			Usage:   "tile size in pixels",
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Value:   "hex",
			Usage:   "pixelisation mode: sqr or hex",
		},
		&cli.StringFlag{
			Name:  "sample",
			Value: "center",
			Usage: "tile color strategy: center or mean",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log progress to stderr",
		},
	}

	app.Action = pixelise

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Print metadata about an image file as JSON",
			ArgsUsage: "FILE",
			Action:    info,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func pixelise(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	size := c.Int("size")
	if size < 1 {
		return cli.Exit(fmt.Sprintf("invalid tile size %d: must be at least 1", size), 1)
	}

	mode, err := pixelize.ParseMode(c.String("mode"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	sampling, err := pixelize.ParseSampling(c.String("sample"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	src, dst := c.Args().Get(0), c.Args().Get(1)

	img, err := imageio.Open(src)
	if err != nil {
		return cli.Exit(err, 1)
	}
	bounds := img.Bounds()
	logger.Printf("decoded %s (%dx%d)", src, bounds.Dx(), bounds.Dy())

	start := time.Now()
	out, err := pixelize.Pixelize(img, pixelize.Options{
		Mode:     mode,
		Radius:   size,
		Sampling: sampling,
	})
	if err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("pixelised in %s mode with %s sampling in %v", mode, sampling, time.Since(start))

	if err := imageio.Save(out, dst); err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("wrote %s", dst)

	return nil
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, "info", 1)
	}

	inf, err := imageio.LoadInfo(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(inf)
}
