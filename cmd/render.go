package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"runtime"
	"time"

	"github.com/Boothwhack/ray-tracing/renderer"
	"github.com/Boothwhack/ray-tracing/scene"
	"github.com/Boothwhack/ray-tracing/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Assemble renderer options from the common render flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	pattern, err := tracer.PatternForSamples(ctx.Int("samples"))
	if err != nil {
		return renderer.Options{}, err
	}

	return renderer.Options{
		FrameW:        ctx.Int("width"),
		FrameH:        ctx.Int("height"),
		MaxBounces:    ctx.Int("bounces"),
		SamplePattern: pattern,
		LinesPerChunk: ctx.Int("lines-per-chunk"),
		Workers:       ctx.Int("workers"),
	}, nil
}

// Render a still frame and export it as a png.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := scene.Prefab(ctx.String("scene"))
	if err != nil {
		return err
	}

	r, err := renderer.NewFrame(sc, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}
	displayFrameStats(r.Stats())

	img, err := r.Image()
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding png file: %s", err.Error())
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	return nil
}

// Render a continuously updating view of the scene in an opengl window.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := scene.Prefab(ctx.String("scene"))
	if err != nil {
		return err
	}

	// The opengl context is bound to the main thread.
	runtime.LockOSThread()

	r, err := renderer.NewInteractive(sc, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Render()
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Chunks", "Pixels", "% of frame", "Busy time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Worker),
			fmt.Sprintf("%d", stat.Chunks),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.BusyTime),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
