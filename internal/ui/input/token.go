package input

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const esc = 0x1b

// Token is one decoded unit of terminal input: a literal character (possibly multi-byte UTF-8),
// an ESC-prefixed pair or a complete CSI sequence. Tokens are kept as the raw bytes read.
type Token string

// Sequences produced by xterm compatible terminals in normal cursor key mode.
const (
	TokenUp        Token = "\x1b[A"
	TokenDown      Token = "\x1b[B"
	TokenRight     Token = "\x1b[C"
	TokenLeft      Token = "\x1b[D"
	TokenCtrlUp    Token = "\x1b[1;5A"
	TokenCtrlDown  Token = "\x1b[1;5B"
	TokenCtrlRight Token = "\x1b[1;5C"
	TokenCtrlLeft  Token = "\x1b[1;5D"
	TokenHome      Token = "\x1b[H"
	TokenEnd       Token = "\x1b[F"
	TokenShiftTab  Token = "\x1b[Z"
	TokenDelete    Token = "\x1b[3~"
	TokenPgUp      Token = "\x1b[5~"
	TokenPgDown    Token = "\x1b[6~"
)

var sequenceKeys = map[Token]tea.KeyType{ //nolint:gochecknoglobals
	TokenUp:        tea.KeyUp,
	TokenDown:      tea.KeyDown,
	TokenRight:     tea.KeyRight,
	TokenLeft:      tea.KeyLeft,
	TokenCtrlUp:    tea.KeyCtrlUp,
	TokenCtrlDown:  tea.KeyCtrlDown,
	TokenCtrlRight: tea.KeyCtrlRight,
	TokenCtrlLeft:  tea.KeyCtrlLeft,
	TokenHome:      tea.KeyHome,
	TokenEnd:       tea.KeyEnd,
	TokenShiftTab:  tea.KeyShiftTab,
	TokenDelete:    tea.KeyDelete,
	TokenPgUp:      tea.KeyPgUp,
	TokenPgDown:    tea.KeyPgDown,
}

// IsSequence reports whether the token is a CSI sequence (ESC '[' ...).
func (t Token) IsSequence() bool {
	return strings.HasPrefix(string(t), "\x1b[")
}

// Key translates the token into a bubbletea key so it can be matched against key.Bindings.
// Well formed sequences without a known meaning report false and should be ignored.
func (t Token) Key() (tea.KeyMsg, bool) {
	if t == "" {
		return tea.KeyMsg{}, false
	}

	if t.IsSequence() {
		keyType, found := sequenceKeys[t]
		if !found {
			return tea.KeyMsg{}, false
		}

		return tea.KeyMsg{Type: keyType}, true
	}

	if t[0] == esc && len(t) > 1 {
		inner, ok := Token(t[1:]).Key()
		if !ok || inner.Alt {
			return tea.KeyMsg{}, false
		}
		inner.Alt = true

		return inner, true
	}

	return literalKey(string(t))
}

func literalKey(text string) (tea.KeyMsg, bool) {
	if len(text) == 1 {
		switch b := text[0]; {
		case b == esc:
			return tea.KeyMsg{Type: tea.KeyEsc}, true
		case b == 0x7f:
			return tea.KeyMsg{Type: tea.KeyBackspace}, true
		case b < 0x20:
			return tea.KeyMsg{Type: tea.KeyType(b)}, true
		}
	}

	char, size := utf8.DecodeRuneInString(text)
	if char == utf8.RuneError || size != len(text) {
		return tea.KeyMsg{}, false
	}

	if char == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{char}}, true
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}}, true
}
