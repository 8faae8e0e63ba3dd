// Package stdimg: authoritative registry of engine commands.
//
// This file mirrors the commands implemented in ApplyCommand in
// pkg/stdimg/engine.go. Keep this list up-to-date when you add or
// modify commands so callers (CLI, docs, help text) can read a single
// source of truth.

package stdimg

import "strconv"

// ArgSpec describes a single argument for a command. Min and Max bound numeric
// arguments when HasRange is set.
type ArgSpec struct {
	Name        string // human name
	Type        string // "int", "float", "bool", "string", "path", etc.
	Required    bool
	Default     string // textual default
	Description string
	HasRange    bool
	Min         float64
	Max         float64
}

// CommandSpec defines a single command and its expected arguments.
type CommandSpec struct {
	Name        string
	Args        []ArgSpec
	Usage       string // short usage string
	Description string // brief description
}

// ThresholdArg is shared by every command that takes a darkness threshold.
var ThresholdArg = ArgSpec{
	Name:        "threshold",
	Type:        "int",
	Required:    false,
	Default:     strconv.Itoa(DefaultThreshold),
	Description: "channel value (0..255) below which r, g and b count as dark",
	HasRange:    true,
	Min:         0,
	Max:         255,
}

// Commands is the authoritative list of commands implemented by the engine.
// Keep this synchronized with ApplyCommand in pkg/stdimg/engine.go.
var Commands = []CommandSpec{
	{
		Name:        "removeBorder",
		Args:        []ArgSpec{ThresholdArg},
		Usage:       "removeBorder [threshold]",
		Description: "Make the dark region connected to the image corners transparent.",
	},
	{
		Name:        "trim",
		Args:        []ArgSpec{},
		Usage:       "trim",
		Description: "Crop away fully transparent rows and columns.",
	},
	{
		Name:        "sample",
		Args:        []ArgSpec{},
		Usage:       "sample",
		Description: "Report the four corner pixels and the center pixel; image unchanged.",
	},
}

// LookupCommand returns the command registered under name.
func LookupCommand(name string) (CommandSpec, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return CommandSpec{}, false
}
