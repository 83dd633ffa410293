package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// singleExpression joins argument words into one expression, falling back
// to stdin when no arguments were given.
func singleExpression(args []string) (string, error) {
	if len(args) == 0 {
		return readStdin()
	}
	return strings.Join(args, " "), nil
}

// expressionPair returns exactly two expressions, either as two arguments
// or as two stdin lines.
func expressionPair(args []string) (string, string, error) {
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 0:
		input, err := readStdin()
		if err != nil {
			return "", "", err
		}
		lines := strings.Split(strings.TrimSpace(input), "\n")
		if len(lines) != 2 {
			return "", "", fmt.Errorf("expected exactly two expressions (one per line), got %d", len(lines))
		}
		return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
	default:
		return "", "", fmt.Errorf("equivalence check requires exactly two expressions, got %d", len(args))
	}
}

func readStdin() (string, error) {
	d, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(d)), nil
}
