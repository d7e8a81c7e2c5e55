package cmd

import (
	"bytes"

	"github.com/Boothwhack/ray-tracing/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in prefab scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.Prefabs() {
		table.Append([]string{info.Name, info.Description})
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
