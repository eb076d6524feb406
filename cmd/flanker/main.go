package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/lixenwraith/flanker/config"
	"github.com/lixenwraith/flanker/parameter"
)

var CLI struct {
	Debug      bool   `help:"Enable debug logging and the collision label."`
	ConfigFile string `name:"config" short:"c" help:"TOML configuration file." type:"path" placeholder:"FILE"`

	Run struct {
		Telemetry string `help:"Serve the snapshot stream on this address." placeholder:"ADDR"`
	} `cmd:"" default:"1" help:"Fly over the terrain."`

	Terrain struct {
		Build struct {
		} `cmd:"" help:"Build or refresh the terrain cache from the configured images."`

		Generate struct {
			Out  string `help:"Output directory for the PNGs." default:"assets" type:"path"`
			Seed uint32 `help:"Noise seed." default:"1"`
			Size int    `help:"Image side in pixels." default:"${terrain_size}"`
		} `cmd:"" help:"Write a procedural heightfield and colour map."`
	} `cmd:"" help:"Terrain asset tools."`

	PrintConfig struct {
	} `cmd:"" name:"config" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("flanker"),
		kong.Description("a terminal flight toy over a heightfield"),
		kong.UsageOnError(),
		kong.Vars{"terrain_size": strconv.Itoa(parameter.GeneratedTerrainSize)},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	var err error
	switch ctx.Command() {
	case "run":
		err = runCommand(CLI.ConfigFile, CLI.Run.Telemetry, CLI.Debug)
	case "terrain build":
		setupConsoleLogging(os.Stderr, CLI.Debug)
		err = buildTerrainCommand(CLI.ConfigFile)
	case "terrain generate":
		setupConsoleLogging(os.Stderr, CLI.Debug)
		g := CLI.Terrain.Generate
		err = generateTerrainCommand(g.Out, g.Seed, g.Size)
	case "config":
		err = printConfigCommand()
	}
	if err != nil {
		writeError(err)
	}
}

// loadConfig returns the defaults when no file is named
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func printConfigCommand() error {
	data, err := config.Encode(config.Default())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
