package player

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
)

const (
	defaultSelectorRowLength = 80
	defaultSelectorRowCount  = 5
)

// LineReader yields player input one line at a time.
type LineReader interface {
	ReadLine() (string, error)
}

type Selectable interface {
	Selector() string
}

type selector[T Selectable] struct {
	options []option[T]
	output  []string
}

type option[T Selectable] struct {
	id  storage.Identifier
	val T
}

func NewSelector[T Selectable](v map[storage.Identifier]T) *selector[T] {
	s := &selector[T]{
		options: []option[T]{},
	}

	for id, val := range v {
		s.options = append(s.options, option[T]{id: id, val: val})
	}
	// Map order is random; keep the menu stable between sessions.
	slices.SortFunc(s.options, func(a, b option[T]) int {
		return strings.Compare(a.id.String(), b.id.String())
	})
	s.build()

	return s
}

func (s *selector[T]) Prompt(in LineReader, w io.Writer, prompt string) (storage.Identifier, error) {
	if _, err := fmt.Fprintf(w, "%s\n", prompt); err != nil {
		return "", err
	}

	for _, str := range s.output {
		if len(strings.TrimSpace(str)) > 0 {
			if _, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(str, " ")); err != nil {
				return "", err
			}
		}
	}

	selection, err := Prompt(in, w, "Make your selection: ", WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil {
				return false, "Invalid selection!\n"
			}

			if s.Select(i) == "" {
				return false, "Invalid selection!\n"
			}

			return true, ""
		},
	))
	if err != nil {
		return "", err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		return "", err
	}

	return s.Select(i), nil
}

func (s *selector[T]) Select(i int) storage.Identifier {
	if i < 1 || i > len(s.options) {
		return ""
	}
	return s.options[i-1].id
}

func (s *selector[T]) build() {
	// Calculate column width
	colWidth := 1
	for _, v := range s.options {
		l := len(v.val.Selector()) + 7 // Plus 7 for number and spacing (nn. <val>  )
		if l > colWidth {
			colWidth = l
		}
	}

	// Figure out the number number of columns and rows. We want to fill columns
	// first, left to right, but we might need more rows than the default number
	// if there isn't enough space.
	numVals := len(s.options)
	numCols := max(defaultSelectorRowLength/colWidth, 1)
	numRows := max(numVals/numCols, defaultSelectorRowCount)

	count := 0
	rows := make([]string, numRows)
	for _, v := range s.options {
		rows[count%numRows] = rows[count%numRows] + fmt.Sprintf("%2d. %-*s  ", count+1, colWidth-5, v.val.Selector())
		count++
	}

	s.output = rows
}

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// ErrTooManyTries is returned by Prompt when the validator rejects the
// input more times than WithMaxTries allows.
var ErrTooManyTries = fmt.Errorf("too many tries")

func Prompt(in LineReader, w io.Writer, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		if _, err := io.WriteString(w, prompt); err != nil {
			return "", err
		}

		input, err := in.ReadLine()
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if _, err := io.WriteString(w, msg); err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", ErrTooManyTries
				}

				continue
			}
		}

		return input, nil
	}
}

func PromptYN(in LineReader, w io.Writer, prompt string) (bool, error) {
	str, err := Prompt(in, w, prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes":
				return true, ""

			case "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
