package rpn

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidDefinition = errors.New("rpn: invalid program definition")

// Definition names an expression and the stack it starts from (top first).
type Definition struct {
	Name  string  `yaml:"name"`
	Expr  string  `yaml:"expr"`
	Stack []int64 `yaml:"stack"`
}

// File is the document layout of a program file:
//
//	programs:
//	  - name: add
//	    expr: "1 2 +"
//	    stack: [3]
type File struct {
	Programs []Definition `yaml:"programs"`
}

// Parse decodes a program file and validates every definition. All
// validation problems are reported together.
func Parse(r io.Reader) ([]Definition, error) {
	var file File

	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decoding program file: %w", err)
	}

	var errs []error

	seen := make(map[string]int, len(file.Programs))

	for i, def := range file.Programs {
		switch {
		case def.Name == "":
			errs = append(errs, fmt.Errorf("%w: entry %d has no name", ErrInvalidDefinition, i))
		case def.Expr == "":
			errs = append(errs, fmt.Errorf("%w: %q has no expression", ErrInvalidDefinition, def.Name))
		}

		if first, dup := seen[def.Name]; dup && def.Name != "" {
			errs = append(errs, fmt.Errorf("%w: %q defined at entries %d and %d", ErrInvalidDefinition, def.Name, first, i))
		} else if !dup {
			seen[def.Name] = i
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return file.Programs, nil
}

// LoadFile reads and parses the program file at path.
func LoadFile(path string) ([]Definition, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("opening program file: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	return Parse(f)
}
