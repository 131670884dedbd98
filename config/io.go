package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteTo writes one "key\tvalue" line per parameter in a fixed order.
func (p Parameters) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, f := range fields {
		n, err := fmt.Fprintf(w, "%s\t%s\n", f.key, f.get(&p))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Parse reads whitespace separated "key value" lines on top of Default().
// Blank lines and lines starting with "//" or ";" are skipped. Keys that name
// no parameter are returned in unknown and otherwise ignored.
func Parse(r io.Reader) (p Parameters, unknown []string, err error) {
	p = Default()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") || strings.HasPrefix(text, ";") {
			continue
		}
		key, value, ok := splitKeyValue(text)
		if !ok {
			return Default(), nil, fmt.Errorf("line %d %q: %w", line, text, ErrInvalidValue)
		}
		if !IsKey(key) {
			unknown = append(unknown, key)
			continue
		}
		if err = p.Assign(key, value); err != nil {
			return Default(), nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return Default(), nil, err
	}

	return p, unknown, nil
}

// splitKeyValue splits "key<ws>value".
func splitKeyValue(s string) (key, value string, ok bool) {
	f := strings.Fields(s)
	if len(f) < 2 {
		return "", "", false
	}

	return f[0], strings.Join(f[1:], " "), true
}

// LoadText reads a key/value parameter file and validates it.
func LoadText(path string) (Parameters, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), nil, fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer f.Close()

	p, unknown, err := Parse(f)
	if err != nil {
		return Default(), nil, fmt.Errorf("failed to parse parameter file: %w", err)
	}
	if err = p.Validate(); err != nil {
		return Default(), nil, fmt.Errorf("invalid parameters: %w", err)
	}

	return p, unknown, nil
}

// LoadYAML reads a YAML parameter file. Keys left out keep their defaults.
func LoadYAML(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read parameter file: %w", err)
	}

	return UnmarshalYAML(data)
}

// UnmarshalYAML decodes YAML on top of Default() and validates the result.
func UnmarshalYAML(data []byte) (Parameters, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("failed to parse parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid parameters: %w", err)
	}

	return p, nil
}
