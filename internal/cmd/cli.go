package cmd

import "github.com/Alia5/inputsim/internal/config"

// CLI is the root command line of inputsim.
type CLI struct {
	Options config.Options `embed:""`
	Config  string         `help:"Path to a JSON, YAML or TOML config file" type:"path" env:"INPUTSIM_CONFIG"`

	Key    Key           `cmd:"" help:"Press and release keys one after another"`
	Combo  Combo         `cmd:"" help:"Send key chords such as ctrl+shift+esc"`
	Type   Type          `cmd:"" help:"Type text as unicode characters"`
	Move   Move          `cmd:"" help:"Move the mouse pointer"`
	Click  Click         `cmd:"" help:"Press a mouse button"`
	Scroll Scroll        `cmd:"" help:"Turn the mouse wheel"`
	State  State         `cmd:"" help:"Show the logical, physical and toggle state of a key"`
	Keys   Keys          `cmd:"" help:"List key names accepted by key, combo and state"`
	Conf   ConfigCommand `cmd:"" name:"config" help:"Manage configuration files"`
}
