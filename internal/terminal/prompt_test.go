package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIntegerRetries(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n-3\n7\n"), &out)

	n, err := p.RequestInteger("Bid a card by number: ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 3, strings.Count(out.String(), "Bid a card by number: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Failed to parse number"))
}

func TestRequestIntegerTrimsWhitespace(t *testing.T) {
	p := NewPrompter(strings.NewReader("  12 \r\n"), io.Discard)
	n, err := p.RequestInteger("> ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestRequestIntegerLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("5\n0"), io.Discard)

	n, err := p.RequestInteger("> ")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = p.RequestInteger("> ")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = p.RequestInteger("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestRequestIntegerEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)
	_, err := p.RequestInteger("> ")
	assert.ErrorIs(t, err, io.EOF)

	p = NewPrompter(strings.NewReader("junk"), &out)
	_, err = p.RequestInteger("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "Failed to parse number")
}
