// Package hexparse turns typed hex byte strings like "1f 8b 08" into bytes.
package hexparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidToken error = errors.New("invalid hexadecimal byte")

// TokenError reports the first token that is not a byte in hex.
type TokenError struct {
	Token string
	Index int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s isn't a hexadecimal byte", e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// Parse splits s on runs of ASCII whitespace and parses every token as a
// base 16 value in 0-255. Parsing stops at the first bad token and no bytes
// are returned in that case.
func Parse(s string) ([]byte, error) {
	tokens := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), isSpace)

	data := make([]byte, 0, len(tokens))
	for i, token := range tokens {
		b, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			return nil, &TokenError{Token: token, Index: i}
		}
		data = append(data, byte(b))
	}

	return data, nil
}

func MustParse(s string) []byte {
	data, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return data
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
