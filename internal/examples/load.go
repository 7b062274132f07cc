package examples

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"commabot/internal/logger"
)

// Parse reads an example bank from a text file. Each non-empty line is
// sentence<TAB>0|1<TAB>explanation, where 1 means the comma is required.
// The sentence must contain the conjunction « и » to be usable as a
// split point.
func Parse(path string) (*Bank, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var items []Example
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		item, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid examples found in %s", path)
	}

	return New(items, ruleText), nil
}

func parseLine(line string) (Example, error) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 {
		return Example{}, fmt.Errorf("expected sentence<TAB>0|1<TAB>explanation, got %d field(s)", len(parts))
	}

	text := strings.TrimSpace(parts[0])
	if text == "" {
		return Example{}, fmt.Errorf("sentence cannot be empty")
	}
	if !strings.Contains(text, conjunction) {
		return Example{}, fmt.Errorf("sentence has no usable «%s» split point", strings.TrimSpace(conjunction))
	}

	var needsComma bool
	switch strings.TrimSpace(parts[1]) {
	case "0":
		needsComma = false
	case "1":
		needsComma = true
	default:
		return Example{}, fmt.Errorf("answer must be 0 or 1, got %q", parts[1])
	}

	explanation := strings.TrimSpace(parts[2])
	if explanation == "" {
		return Example{}, fmt.Errorf("explanation cannot be empty")
	}

	return Example{Text: text, NeedsComma: needsComma, Explanation: explanation}, nil
}

// LoadFile loads examples from a file or falls back to the built-in bank.
func LoadFile(path string) *Bank {
	bank, err := Parse(path)
	if err != nil {
		logger.Get().Warn("falling back to built-in examples",
			zap.String("file", path), zap.Error(err))
		return Default()
	}

	logger.Get().Info("loaded examples from file",
		zap.String("file", path), zap.Int("count", bank.Count()))
	return bank
}
