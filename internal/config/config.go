// Package config holds the global options shared by every inputsim command.
// Values come from flags, environment variables and config files, in that
// order of precedence.
package config

import "time"

// Log configures the process logger.
type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"INPUTSIM_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" type:"path"`
	RawFile string `help:"Write a hex dump of every encoded input batch to this file" type:"path"`
}

// Input configures how gestures are sent.
type Input struct {
	DryRun         bool          `help:"Log the generated records instead of sending them" env:"INPUTSIM_DRY_RUN"`
	WheelClickSize int32         `help:"Wheel delta sent per scroll click" default:"120" env:"INPUTSIM_WHEEL_CLICK_SIZE"`
	Delay          time.Duration `help:"Wait this long before sending, e.g. to focus the target window" default:"0s"`
}

// Options groups every option that can be stored in a config file.
type Options struct {
	Log   Log   `embed:"" prefix:"log."`
	Input Input `embed:""`
}
