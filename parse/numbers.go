// Package parse converts textual input into sequences of numbers.
package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/couchbase/tools-cumsum/errdefs"
)

// Number is satisfied by the element types which can be parsed from a token.
type Number interface {
	int64 | float64 | complex128
}

// TokenError is returned when a token can't be parsed as a number.
type TokenError struct {
	Index int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d (%q) is not a valid number: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Numbers parses every token as a number of type 'E'. Parsing doesn't stop at the first invalid token, the returned
// error is an '*errdefs.MultiError' containing a '*TokenError' for each of them.
func Numbers[E Number](tokens []string) ([]E, error) {
	var (
		numbers = make([]E, 0, len(tokens))
		errs    = errdefs.MultiError{Prefix: "failed to parse input: ", OutputCap: 10}
	)

	for i, token := range tokens {
		n, err := number[E](token)
		if err != nil {
			errs.Add(&TokenError{Index: i, Token: token, Err: err})
			continue
		}

		numbers = append(numbers, n)
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	return numbers, nil
}

// number parses a single token as a number of type 'E'.
func number[E Number](token string) (E, error) {
	var (
		zero E
		n    any
		err  error
	)

	switch any(zero).(type) {
	case int64:
		n, err = strconv.ParseInt(decimalLeadingZeros(token), 0, 64)
	case float64:
		n, err = strconv.ParseFloat(token, 64)
	default:
		n, err = strconv.ParseComplex(token, 128)
	}

	if err != nil {
		return zero, unwrapNumError(err)
	}

	return n.(E), nil
}

// decimalLeadingZeros strips the leading zeros of a token without a '0x', '0o' or '0b' prefix, so that zero padded
// tokens such as "010" are read as decimal rather than octal when parsing with base 0.
func decimalLeadingZeros(token string) string {
	var sign string
	if strings.HasPrefix(token, "+") || strings.HasPrefix(token, "-") {
		sign, token = token[:1], token[1:]
	}

	if len(token) > 1 && token[0] == '0' && strings.ContainsRune("xXoObB", rune(token[1])) {
		return sign + token
	}

	for len(token) > 1 && token[0] == '0' && token[1] >= '0' && token[1] <= '9' {
		token = token[1:]
	}

	return sign + token
}

// unwrapNumError strips the '*strconv.NumError' wrapper, the token is already reported by 'TokenError'.
func unwrapNumError(err error) error {
	if numErr, ok := err.(*strconv.NumError); ok {
		return numErr.Err
	}

	return err
}

// Fields reads everything from the given reader, returning the tokens separated by whitespace or commas.
func Fields(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return strings.FieldsFunc(string(data), func(r rune) bool { return r == ',' || unicode.IsSpace(r) }), nil
}
