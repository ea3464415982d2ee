// Command devices lists the microphones the server would offer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Wyydra/audiorooms/internal/adapter/driven/device/mediadevices"
	"github.com/Wyydra/audiorooms/internal/core/service"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
)

func main() {
	verbose := flag.Bool("v", false, "log device enumeration")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	mics := service.NewMicrophoneSelector(mediadevices.NewDeviceManager(l), l)
	devices := mics.Refresh()
	if len(devices) == 0 {
		fmt.Fprintln(os.Stderr, "no microphone found")
		os.Exit(1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Name", "ID", "Default"})
	for i, d := range devices {
		table.Append([]string{strconv.Itoa(i), d.Name, d.ID, strconv.FormatBool(d.IsDefault)})
	}
	table.Render()
}
