package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Alia5/inputsim/vk"
)

// Key presses keys in order, or only presses or releases them.
type Key struct {
	Keys []string `arg:"" name:"key" help:"Key names, see 'inputsim keys'"`
	Down bool     `help:"Only press the keys" xor:"direction"`
	Up   bool     `help:"Only release the keys" xor:"direction"`
}

func (k *Key) Run(s *Session, logger *slog.Logger) error {
	codes, err := parseKeys(k.Keys)
	if err != nil {
		return err
	}
	if err := s.wait(logger); err != nil {
		return err
	}

	kb := s.Sim.Keyboard()
	switch {
	case k.Down:
		for _, c := range codes {
			if err := kb.KeyDown(c); err != nil {
				return err
			}
		}
	case k.Up:
		for _, c := range codes {
			if err := kb.KeyUp(c); err != nil {
				return err
			}
		}
	default:
		if err := kb.KeyPress(codes...); err != nil {
			return err
		}
	}
	logger.Debug("keys sent", "keys", codes)
	return nil
}

// Combo sends each chord as one modified keystroke.
type Combo struct {
	Combos []string `arg:"" name:"combo" help:"Chords such as ctrl+c or ctrl+shift+esc"`
}

func (c *Combo) Run(s *Session, logger *slog.Logger) error {
	type chord struct{ mods, keys []vk.Code }
	chords := make([]chord, 0, len(c.Combos))
	for _, combo := range c.Combos {
		mods, keys, err := vk.ParseCombo(combo)
		if err != nil {
			return err
		}
		chords = append(chords, chord{mods: mods, keys: keys})
	}
	if err := s.wait(logger); err != nil {
		return err
	}

	for i, ch := range chords {
		if err := s.Sim.Keyboard().ModifiedKeyStroke(ch.mods, ch.keys); err != nil {
			return fmt.Errorf("combo %q: %w", c.Combos[i], err)
		}
	}
	return nil
}

// Type enters text. Without an argument the text is read from stdin.
type Type struct {
	Text   string `arg:"" optional:"" help:"Text to type; read from stdin when omitted"`
	Secret bool   `help:"Read the text from the terminal without echoing it"`

	Stdin io.Reader `kong:"-"`
}

func (t *Type) Run(s *Session, logger *slog.Logger) error {
	text, err := t.text()
	if err != nil {
		return err
	}
	if err := s.wait(logger); err != nil {
		return err
	}
	if err := s.Sim.Keyboard().TextEntry(text); err != nil {
		return err
	}
	logger.Debug("text sent", "length", len(text))
	return nil
}

func (t *Type) text() (string, error) {
	if t.Text != "" {
		return t.Text, nil
	}
	if t.Secret {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", errors.New("--secret needs an interactive terminal")
		}
		_, _ = fmt.Fprint(os.Stderr, "Text: ")
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return string(b), nil
	}

	r := t.Stdin
	if r == nil {
		r = os.Stdin
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func parseKeys(names []string) ([]vk.Code, error) {
	codes := make([]vk.Code, 0, len(names))
	for _, n := range names {
		c, err := vk.Parse(n)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}
