package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/validation"

	"github.com/shopspring/decimal"
)

// MenuExit is the selection that leaves every menu
const MenuExit = 0

var (
	ErrInputClosed         = errors.New("input closed")
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// Prompter reads teller input line by line and writes prompts and results.
// Every prompt returns ErrInputClosed once the input is exhausted.
type Prompter struct {
	scanner   *bufio.Scanner
	out       io.Writer
	validator *validation.Validator
}

// NewPrompter creates a prompter over in and out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner:   bufio.NewScanner(in),
		out:       out,
		validator: validation.GetValidator(),
	}
}

// Printf writes formatted output
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line of output
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Writer exposes the output stream for renderers that write directly
func (p *Prompter) Writer() io.Writer {
	return p.out
}

// Rule prints a line of n dashes
func (p *Prompter) Rule(n int) {
	p.Println(strings.Repeat("-", n))
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Select reads one menu choice. It returns MenuExit or a number in
// [lower, upper]; anything else is ErrSelectionOutOfRange.
func (p *Prompter) Select(lower, upper int) (int, error) {
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}

	option, err := strconv.Atoi(line)
	if err != nil || (option != MenuExit && (option < lower || option > upper)) {
		return 0, ErrSelectionOutOfRange
	}
	return option, nil
}

// SelectionError prints the range reminder shown after a bad menu choice
func (p *Prompter) SelectionError(lower, upper int) {
	response := apperrors.NewErrorResponse(apperrors.ValidationMenuSelection, "",
		apperrors.WithMessage(fmt.Sprintf("Oops, please enter a number from %d to %d or %d to Logout", lower, upper, MenuExit)))
	p.Printf("\n%s\n\n", response.Line())
}

// PromptText prints message and returns the next line, trimmed
func (p *Prompter) PromptText(message string) (string, error) {
	p.Println(message)
	return p.readLine()
}

// PromptName re-prompts until the input is a valid person name. field
// labels the validation messages, e.g. "first name".
func (p *Prompter) PromptName(message, field string) (string, error) {
	for {
		name, err := p.PromptText(message)
		if err != nil {
			return "", err
		}

		verr := p.validator.ValidateName(field, name)
		if verr == nil {
			return name, nil
		}
		p.Println(apperrors.FromError(verr, "").Line())
	}
}

// PromptDecimal re-prompts until the input is a number in [min, max].
// Input may carry a leading $ and thousands separators and is rounded to cents.
func (p *Prompter) PromptDecimal(message string, min, max decimal.Decimal) (decimal.Decimal, error) {
	for {
		p.Printf("%s", message)
		line, err := p.readLine()
		if err != nil {
			return decimal.Zero, err
		}

		cleaned := strings.ReplaceAll(strings.TrimPrefix(line, "$"), ",", "")
		amount, err := decimal.NewFromString(cleaned)
		if err != nil {
			p.Println(apperrors.NewErrorResponse(apperrors.ValidationInvalidFormat, "").Line())
			continue
		}

		amount = amount.Round(2)
		if amount.LessThan(min) || amount.GreaterThan(max) {
			p.Println(apperrors.NewErrorResponse(apperrors.ValidationOutOfRange, "",
				apperrors.WithMessage(fmt.Sprintf("Please enter an amount from %s to %s",
					models.FormatMoney(min), models.FormatMoney(max)))).Line())
			continue
		}
		return amount, nil
	}
}
