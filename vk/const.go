// Package vk defines Windows virtual key codes and the static tables around them.
package vk

// Code is a Windows virtual key code.
type Code uint16

// Mouse buttons and control keys
const (
	LButton  Code = 0x01
	RButton  Code = 0x02
	Cancel   Code = 0x03 // Control-break
	MButton  Code = 0x04
	XButton1 Code = 0x05
	XButton2 Code = 0x06
	Back     Code = 0x08 // Backspace
	Tab      Code = 0x09
	Clear    Code = 0x0C
	Return   Code = 0x0D
	Shift    Code = 0x10
	Control  Code = 0x11
	Menu     Code = 0x12 // Alt
	Pause    Code = 0x13
	Capital  Code = 0x14 // Caps Lock
)

// IME keys
const (
	Kana       Code = 0x15
	Hangul     Code = 0x15
	ImeOn      Code = 0x16
	Junja      Code = 0x17
	Final      Code = 0x18
	Hanja      Code = 0x19
	Kanji      Code = 0x19
	ImeOff     Code = 0x1A
	Convert    Code = 0x1C
	NonConvert Code = 0x1D
	Accept     Code = 0x1E
	ModeChange Code = 0x1F
)

// Navigation and editing
const (
	Escape   Code = 0x1B
	Space    Code = 0x20
	Prior    Code = 0x21 // Page Up
	Next     Code = 0x22 // Page Down
	End      Code = 0x23
	Home     Code = 0x24
	Left     Code = 0x25
	Up       Code = 0x26
	Right    Code = 0x27
	Down     Code = 0x28
	Select   Code = 0x29
	Print    Code = 0x2A
	Execute  Code = 0x2B
	Snapshot Code = 0x2C // Print Screen
	Insert   Code = 0x2D
	Delete   Code = 0x2E
	Help     Code = 0x2F
)

// Digits 0-9 (top row), same values as ASCII '0'-'9'
const (
	Key0 Code = 0x30 + iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Letters A-Z, same values as ASCII 'A'-'Z'
const (
	A Code = 0x41 + iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Windows and application keys
const (
	LWin  Code = 0x5B
	RWin  Code = 0x5C
	Apps  Code = 0x5D
	Sleep Code = 0x5F
)

// Numeric keypad
const (
	Numpad0 Code = 0x60 + iota
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	Multiply
	Add
	Separator
	Subtract
	Decimal
	Divide
)

// Function keys F1-F24
const (
	F1 Code = 0x70 + iota
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
)

// Locks and left/right modifiers
const (
	NumLock  Code = 0x90
	Scroll   Code = 0x91
	LShift   Code = 0xA0
	RShift   Code = 0xA1
	LControl Code = 0xA2
	RControl Code = 0xA3
	LMenu    Code = 0xA4
	RMenu    Code = 0xA5
)

// Browser, media and launch keys
const (
	BrowserBack       Code = 0xA6
	BrowserForward    Code = 0xA7
	BrowserRefresh    Code = 0xA8
	BrowserStop       Code = 0xA9
	BrowserSearch     Code = 0xAA
	BrowserFavorites  Code = 0xAB
	BrowserHome       Code = 0xAC
	VolumeMute        Code = 0xAD
	VolumeDown        Code = 0xAE
	VolumeUp          Code = 0xAF
	MediaNextTrack    Code = 0xB0
	MediaPrevTrack    Code = 0xB1
	MediaStop         Code = 0xB2
	MediaPlayPause    Code = 0xB3
	LaunchMail        Code = 0xB4
	LaunchMediaSelect Code = 0xB5
	LaunchApp1        Code = 0xB6
	LaunchApp2        Code = 0xB7
)

// OEM keys, layout dependent
const (
	OEM1      Code = 0xBA // ;: on US layouts
	OEMPlus   Code = 0xBB
	OEMComma  Code = 0xBC
	OEMMinus  Code = 0xBD
	OEMPeriod Code = 0xBE
	OEM2      Code = 0xBF // /?
	OEM3      Code = 0xC0 // `~
	OEM4      Code = 0xDB // [{
	OEM5      Code = 0xDC // \|
	OEM6      Code = 0xDD // ]}
	OEM7      Code = 0xDE // '"
	OEM8      Code = 0xDF
	OEM102    Code = 0xE2 // <> or \| on RT 102-key keyboards
)

// Miscellaneous
const (
	ProcessKey Code = 0xE5
	Packet     Code = 0xE7 // passes Unicode characters as if they were keystrokes
	Attn       Code = 0xF6
	CrSel      Code = 0xF7
	ExSel      Code = 0xF8
	ErEOF      Code = 0xF9
	Play       Code = 0xFA
	Zoom       Code = 0xFB
	NoName     Code = 0xFC
	PA1        Code = 0xFD
	OEMClear   Code = 0xFE
)

// IsExtended reports whether k needs KEYEVENTF_EXTENDEDKEY when injected.
//
// The extended keys are the right-hand ALT and CTRL keys, the INS, DEL, HOME,
// END, PAGE UP, PAGE DOWN and arrow keys left of the numeric keypad, NUM LOCK,
// BREAK (CTRL+PAUSE), PRINT SCRN and the keypad divide key. The generic Menu
// and Control codes are included as well.
func IsExtended(k Code) bool {
	switch k {
	case Menu, RMenu, Control, RControl,
		Insert, Delete, Home, End, Prior, Next,
		Right, Up, Left, Down,
		NumLock, Cancel, Snapshot, Divide:
		return true
	default:
		return false
	}
}
