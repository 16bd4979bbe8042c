package input

import (
	"bufio"
	"errors"
	"io"
)

// maxSequenceLen bounds how many bytes a CSI sequence may accumulate before it is cut off. Real
// terminals never come close; this only protects against garbage on the line.
const maxSequenceLen = 32

type scanState int

const (
	stateNormal scanState = iota
	stateEscape
	stateBracket
)

// Decoder splits a raw terminal byte stream into Tokens. It is a three state scanner:
//
//	normal  --ESC-->  escape  --'['-->  bracket  --[A-Za-z~]-->  done
//	normal  --other-> done (literal)
//	escape  --other-> done (ESC + byte)
//
// Reads block until a token is complete; there is no timeout for a lone ESC.
type Decoder struct {
	reader *bufio.Reader
}

func NewDecoder(reader io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReader(reader)}
}

// Next blocks until one complete token has been read. When the stream ends in the middle of a
// sequence the partial token is returned first and the error on the following call.
func (d *Decoder) Next() (Token, error) {
	buf := make([]byte, 0, 8)
	state := stateNormal

	for {
		char, errRead := d.reader.ReadByte()
		if errRead != nil {
			if len(buf) > 0 && errors.Is(errRead, io.EOF) {
				return Token(buf), nil
			}

			return "", errRead
		}

		buf = append(buf, char)

		switch state {
		case stateNormal:
			if char != esc {
				return Token(d.completeRune(buf)), nil
			}
			state = stateEscape
		case stateEscape:
			if char != '[' {
				return Token(d.completeRune(buf)), nil
			}
			state = stateBracket
		case stateBracket:
			if isFinalByte(char) || len(buf) >= maxSequenceLen {
				return Token(buf), nil
			}
		}
	}
}

// completeRune pulls in the continuation bytes of the multi-byte UTF-8 character whose lead byte ends
// buf, so text is passed through as whole characters.
func (d *Decoder) completeRune(buf []byte) []byte {
	for range runeLen(buf[len(buf)-1]) - 1 {
		next, err := d.reader.ReadByte()
		if err != nil {
			break
		}

		if next&0xc0 != 0x80 {
			_ = d.reader.UnreadByte()

			break
		}

		buf = append(buf, next)
	}

	return buf
}

func runeLen(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}

func isFinalByte(char byte) bool {
	return (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z') || char == '~'
}
