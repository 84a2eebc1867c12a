package console

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// readLine prompts and returns one line without its terminator.
// It returns errQuit once input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			c.printf("\n")
			return "", errQuit
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readInt prompts until the user enters an integer in [lo, hi].
func (c *Console) readInt(prompt string, lo, hi int) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.printf(" Invalid input, try again.\n")
			continue
		}
		if v < lo || v > hi {
			c.printf(" Please enter a number between %d and %d.\n", lo, hi)
			continue
		}

		return v, nil
	}
}

// readString prompts until the user enters a non-empty line.
func (c *Console) readString(prompt string) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			c.printf(" Input cannot be empty.\n")
			continue
		}

		return line, nil
	}
}
