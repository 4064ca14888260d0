package vk

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned when a key name cannot be resolved.
var ErrUnknownKey = errors.New("unknown key")

// KeyName maps virtual key codes to their canonical lower-case names.
var KeyName = map[Code]string{
	// Mouse buttons
	LButton: "lbutton", RButton: "rbutton", MButton: "mbutton",
	XButton1: "xbutton1", XButton2: "xbutton2",

	// Control keys
	Cancel:  "cancel",
	Back:    "backspace",
	Tab:     "tab",
	Clear:   "clear",
	Return:  "enter",
	Shift:   "shift",
	Control: "ctrl",
	Menu:    "alt",
	Pause:   "pause",
	Capital: "capslock",
	Escape:  "esc",
	Space:   "space",

	// IME
	Kana: "kana", ImeOn: "imeon", Junja: "junja", Final: "final", Kanji: "kanji",
	ImeOff: "imeoff", Convert: "convert", NonConvert: "nonconvert", Accept: "accept",
	ModeChange: "modechange",

	// Navigation and editing
	Prior:    "pageup",
	Next:     "pagedown",
	End:      "end",
	Home:     "home",
	Left:     "left",
	Up:       "up",
	Right:    "right",
	Down:     "down",
	Select:   "select",
	Print:    "print",
	Execute:  "execute",
	Snapshot: "printscreen",
	Insert:   "insert",
	Delete:   "delete",
	Help:     "help",

	// Digits
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	// Letters
	A: "a", B: "b", C: "c", D: "d", E: "e", F: "f", G: "g",
	H: "h", I: "i", J: "j", K: "k", L: "l", M: "m", N: "n",
	O: "o", P: "p", Q: "q", R: "r", S: "s", T: "t", U: "u",
	V: "v", W: "w", X: "x", Y: "y", Z: "z",

	// Windows keys
	LWin: "lwin", RWin: "rwin", Apps: "apps", Sleep: "sleep",

	// Numpad
	Numpad0: "num0", Numpad1: "num1", Numpad2: "num2", Numpad3: "num3", Numpad4: "num4",
	Numpad5: "num5", Numpad6: "num6", Numpad7: "num7", Numpad8: "num8", Numpad9: "num9",
	Multiply:  "multiply",
	Add:       "add",
	Separator: "separator",
	Subtract:  "subtract",
	Decimal:   "decimal",
	Divide:    "divide",

	// Function keys
	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6",
	F7: "f7", F8: "f8", F9: "f9", F10: "f10", F11: "f11", F12: "f12",
	F13: "f13", F14: "f14", F15: "f15", F16: "f16", F17: "f17", F18: "f18",
	F19: "f19", F20: "f20", F21: "f21", F22: "f22", F23: "f23", F24: "f24",

	// Locks and modifiers
	NumLock:  "numlock",
	Scroll:   "scrolllock",
	LShift:   "lshift",
	RShift:   "rshift",
	LControl: "lctrl",
	RControl: "rctrl",
	LMenu:    "lalt",
	RMenu:    "ralt",

	// Browser and media
	BrowserBack:       "browserback",
	BrowserForward:    "browserforward",
	BrowserRefresh:    "browserrefresh",
	BrowserStop:       "browserstop",
	BrowserSearch:     "browsersearch",
	BrowserFavorites:  "browserfavorites",
	BrowserHome:       "browserhome",
	VolumeMute:        "volumemute",
	VolumeDown:        "volumedown",
	VolumeUp:          "volumeup",
	MediaNextTrack:    "medianext",
	MediaPrevTrack:    "mediaprev",
	MediaStop:         "mediastop",
	MediaPlayPause:    "mediaplaypause",
	LaunchMail:        "launchmail",
	LaunchMediaSelect: "launchmediaselect",
	LaunchApp1:        "launchapp1",
	LaunchApp2:        "launchapp2",

	// OEM
	OEM1:      "semicolon",
	OEMPlus:   "plus",
	OEMComma:  "comma",
	OEMMinus:  "minus",
	OEMPeriod: "period",
	OEM2:      "slash",
	OEM3:      "grave",
	OEM4:      "leftbracket",
	OEM5:      "backslash",
	OEM6:      "rightbracket",
	OEM7:      "quote",
	OEM8:      "oem8",
	OEM102:    "oem102",

	// Misc
	ProcessKey: "processkey",
	Packet:     "packet",
	Attn:       "attn",
	CrSel:      "crsel",
	ExSel:      "exsel",
	ErEOF:      "ereof",
	Play:       "play",
	Zoom:       "zoom",
	NoName:     "noname",
	PA1:        "pa1",
	OEMClear:   "oemclear",
}

// aliases are accepted by Parse in addition to the canonical names.
var aliases = map[string]Code{
	"control":   Control,
	"menu":      Menu,
	"win":       LWin,
	"windows":   LWin,
	"super":     LWin,
	"cmd":       LWin,
	"return":    Return,
	"escape":    Escape,
	"back":      Back,
	"bs":        Back,
	"del":       Delete,
	"ins":       Insert,
	"pgup":      Prior,
	"prior":     Prior,
	"pgdn":      Next,
	"pgdown":    Next,
	"next":      Next,
	"caps":      Capital,
	"capital":   Capital,
	"prtsc":     Snapshot,
	"snapshot":  Snapshot,
	"scroll":    Scroll,
	"lcontrol":  LControl,
	"rcontrol":  RControl,
	"lmenu":     LMenu,
	"rmenu":     RMenu,
	"altgr":     RMenu,
	"context":   Apps,
	"hangul":    Hangul,
	"hanja":     Hanja,
	"break":     Cancel,
	"mute":      VolumeMute,
	"playpause": MediaPlayPause,
	"numpad0":   Numpad0,
	"numpad1":   Numpad1,
	"numpad2":   Numpad2,
	"numpad3":   Numpad3,
	"numpad4":   Numpad4,
	"numpad5":   Numpad5,
	"numpad6":   Numpad6,
	"numpad7":   Numpad7,
	"numpad8":   Numpad8,
	"numpad9":   Numpad9,
	";":         OEM1,
	"=":         OEMPlus,
	",":         OEMComma,
	"-":         OEMMinus,
	".":         OEMPeriod,
	"/":         OEM2,
	"`":         OEM3,
	"[":         OEM4,
	"\\":        OEM5,
	"]":         OEM6,
	"'":         OEM7,
}

var byName = func() map[string]Code {
	m := make(map[string]Code, len(KeyName)+len(aliases))
	for code, name := range KeyName {
		m[name] = code
	}
	for name, code := range aliases {
		m[name] = code
	}
	return m
}()

// String returns the canonical name of the key, or its hex value when unnamed.
func (c Code) String() string {
	if name, ok := KeyName[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(c))
}

// Parse resolves a key name, alias, single character or hex literal (0x41)
// to a virtual key code. Lookup is case-insensitive.
func Parse(name string) (Code, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	if code, ok := byName[s]; ok {
		return code, nil
	}
	if strings.HasPrefix(s, "0x") {
		n, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
		return Code(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// ParseCombo splits a chord such as "ctrl+shift+esc" into its modifiers and
// the final key. A single key yields no modifiers. A literal plus key can be
// written as "ctrl+plus".
func ParseCombo(combo string) (modifiers []Code, keys []Code, err error) {
	parts := strings.Split(combo, "+")
	for i, part := range parts {
		code, perr := Parse(part)
		if perr != nil {
			return nil, nil, fmt.Errorf("combo %q: %w", combo, perr)
		}
		if i == len(parts)-1 {
			keys = append(keys, code)
			continue
		}
		modifiers = append(modifiers, code)
	}
	return modifiers, keys, nil
}

// Names returns every canonical key name in sorted order.
func Names() []string {
	out := make([]string, 0, len(KeyName))
	for _, name := range KeyName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
