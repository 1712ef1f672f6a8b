package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompter_Select(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"in range", "2\n", 2, nil},
		{"exit", "0\n", MenuExit, nil},
		{"padded", "  3 \n", 3, nil},
		{"above range", "4\n", 0, ErrSelectionOutOfRange},
		{"negative", "-1\n", 0, ErrSelectionOutOfRange},
		{"not a number", "two\n", 0, ErrSelectionOutOfRange},
		{"empty line", "\n", 0, ErrSelectionOutOfRange},
		{"closed", "", 0, ErrInputClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)

			got, err := p.Select(1, 3)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_SelectionError(t *testing.T) {
	p, out := newTestPrompter("")

	p.SelectionError(1, 8)

	assert.Equal(t, "\n** Oops, please enter a number from 1 to 8 or 0 to Logout\n\n", out.String())
}

func TestPrompter_PromptDecimal(t *testing.T) {
	min := decimal.RequireFromString("0.01")
	max := decimal.NewFromInt(1000000)

	p, out := newTestPrompter("abc\n0\n2000000\n$1,234.567\n")

	amount, err := p.PromptDecimal("Amount: ", min, max)

	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("1234.57")), amount.String())
	assert.Equal(t, 4, strings.Count(out.String(), "Amount: "))
	assert.Contains(t, out.String(), "** Please enter a number")
	assert.Equal(t, 2, strings.Count(out.String(), "** Please enter an amount from $0.01 to $1,000,000.00"))
}

func TestPrompter_PromptDecimal_InputClosed(t *testing.T) {
	p, _ := newTestPrompter("abc\n")

	_, err := p.PromptDecimal("Amount: ", decimal.Zero, decimal.NewFromInt(10))

	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPrompter_PromptName(t *testing.T) {
	p, out := newTestPrompter("\nR2-D2\n  O'Brien \n")

	name, err := p.PromptName("Enter last name:", "last name")

	require.NoError(t, err)
	assert.Equal(t, "O'Brien", name)
	assert.Equal(t, 3, strings.Count(out.String(), "Enter last name:"))
	assert.Contains(t, out.String(), "last name is required")
	assert.Contains(t, out.String(), "last name may only contain letters")
}

func TestPrompter_PromptText(t *testing.T) {
	p, out := newTestPrompter("hello world\n")

	text, err := p.PromptText("Say something:")

	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "Say something:\n", out.String())
}
