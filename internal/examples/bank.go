package examples

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned when an example index is outside the bank.
var ErrOutOfRange = errors.New("example index out of range")

// Example is one quiz item: the sentence without the comma in question,
// whether the comma is required before the conjunction, and why.
type Example struct {
	Text        string
	NeedsComma  bool
	Explanation string
}

// Bank is an immutable ordered list of examples. Indices into the bank are
// persisted in user mistake logs, so the order must stay stable across runs.
type Bank struct {
	items []Example
	rule  string
}

func New(items []Example, rule string) *Bank {
	copied := make([]Example, len(items))
	copy(copied, items)
	return &Bank{items: copied, rule: rule}
}

// Default returns the built-in example bank.
func Default() *Bank {
	return New(defaultExamples, ruleText)
}

func (b *Bank) Count() int {
	return len(b.items)
}

func (b *Bank) Get(i int) (Example, error) {
	if i < 0 || i >= len(b.items) {
		return Example{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(b.items))
	}
	return b.items[i], nil
}

// Rule returns the rule text shown to users.
func (b *Bank) Rule() string {
	return b.rule
}

// Corrected returns the display form of an example: if the comma is
// required, it is inserted before the last occurrence of the conjunction,
// otherwise the sentence is returned verbatim.
func Corrected(e Example) string {
	if !e.NeedsComma {
		return e.Text
	}
	i := strings.LastIndex(e.Text, conjunction)
	if i < 0 {
		return e.Text
	}
	return e.Text[:i] + "," + e.Text[i:]
}

const conjunction = " и "
