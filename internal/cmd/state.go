package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/inputsim/vk"
)

// State prints the state of a key.
type State struct {
	Key string `arg:"" help:"Key name"`
}

func (st *State) Run(s *Session) error {
	code, err := vk.Parse(st.Key)
	if err != nil {
		return err
	}
	ks := s.Sim.KeyState()

	down, err := ks.IsKeyDown(code)
	if err != nil {
		return err
	}
	hw, err := ks.IsHardwareKeyDown(code)
	if err != nil {
		return err
	}
	toggled, err := ks.IsTogglingKeyInEffect(code)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.Out, "%s (0x%02X): down=%t hardware=%t toggled=%t\n", code, uint16(code), down, hw, toggled)
	return err
}

// Keys lists every key name.
type Keys struct {
	Out io.Writer `kong:"-"`
}

func (k *Keys) Run() error {
	out := k.Out
	if out == nil {
		out = os.Stdout
	}
	for _, name := range vk.Names() {
		code, _ := vk.Parse(name)
		if _, err := fmt.Fprintf(out, "%-20s 0x%02X\n", name, uint16(code)); err != nil {
			return err
		}
	}
	return nil
}
