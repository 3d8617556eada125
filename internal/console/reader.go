package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("input is not a number")

// Reader supplies one parsed integer per human turn from a text stream.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(in io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
	}
}

// ReadIndex reads the next line and parses it as a cell index.
// It returns io.EOF when the stream ends and ErrNotANumber when the
// line is not an integer. Range checking is the engine's job.
func (that *Reader) ReadIndex() (int, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, io.EOF
	}

	line := strings.TrimSpace(that.scanner.Text())

	number, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, line)
	}

	return number, nil
}
