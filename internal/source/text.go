package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ReadText reads integers separated by whitespace or commas. Lines starting
// with # are ignored.
func ReadText(name string, r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			v, err := parseSample(f)
			if err != nil {
				return nil, &ParseError{Source: name, Line: line, Err: err}
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}
