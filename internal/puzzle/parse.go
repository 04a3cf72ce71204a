package puzzle

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Lines splits input into lines, dropping a trailing newline and any
// carriage returns.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Ints parses whitespace-separated unsigned integers.
func Ints[T constraints.Unsigned](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	var zero T
	bits := 8 * int(unsafe.Sizeof(zero))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, bits)
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", f, err)
		}
		out = append(out, T(n))
	}
	return out, nil
}

// Sum adds up xs.
func Sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Product multiplies xs. The product of nothing is 1.
func Product[T constraints.Integer](xs []T) T {
	total := T(1)
	for _, x := range xs {
		total *= x
	}
	return total
}
