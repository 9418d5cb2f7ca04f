package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sentigo/pkg/core"
)

// Default record fields for movie-review datasets.
const (
	DefaultInputField = "review"
	DefaultLabelField = "sentiment"
)

// ErrNotFound reports a missing data file.
var ErrNotFound = errors.New("dataset: file not found")

// ErrMalformed reports a source that failed structural validation. The whole
// load fails on the first bad record; data quality issues surface eagerly
// instead of being skipped.
var ErrMalformed = errors.New("dataset: malformed data")

// MalformedRecordError pinpoints the record that failed validation.
type MalformedRecordError struct {
	Path   string
	Record int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("dataset: %s: record %d: %s", e.Path, e.Record, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformed
}

// LoadOptions selects which record fields hold the input text and the
// ground-truth label.
type LoadOptions struct {
	InputField string
	LabelField string
}

const (
	formatJSON  = "json"
	formatJSONL = "jsonl"
)

// Load reads labeled examples from a JSON array or JSONL file, preserving
// source order. Each example is an independent copy of its record; nothing
// aliases back to the parsed data.
func Load(path string, opts LoadOptions) ([]core.Example, error) {
	inputField := opts.InputField
	if inputField == "" {
		inputField = DefaultInputField
	}
	labelField := opts.LabelField
	if labelField == "" {
		labelField = DefaultLabelField
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	format, err := detectFormat(path, reader)
	if err != nil {
		return nil, err
	}

	switch format {
	case formatJSON:
		return loadJSON(path, reader, inputField, labelField)
	case formatJSONL:
		return loadJSONL(path, reader, inputField, labelField)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported format", ErrMalformed, path)
	}
}

// detectFormat decides by extension, falling back to sniffing the first
// non-space byte: '[' is a JSON array, '{' an object-per-line stream.
func detectFormat(path string, reader *bufio.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".jsonl":
		return formatJSONL, nil
	}

	for {
		b, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %s: empty file", ErrMalformed, path)
			}
			return "", err
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		if err := reader.UnreadByte(); err != nil {
			return "", err
		}
		switch b {
		case '[':
			return formatJSON, nil
		case '{':
			return formatJSONL, nil
		}
		return "", fmt.Errorf("%w: %s: unsupported format", ErrMalformed, path)
	}
}

func loadJSON(path string, reader io.Reader, inputField, labelField string) ([]core.Example, error) {
	var records []map[string]any
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	examples := make([]core.Example, 0, len(records))
	for i, record := range records {
		example, err := toExample(path, i, record, inputField, labelField)
		if err != nil {
			return nil, err
		}
		examples = append(examples, example)
	}
	return examples, nil
}

func loadJSONL(path string, reader io.Reader, inputField, labelField string) ([]core.Example, error) {
	scanner := bufio.NewScanner(reader)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	var examples []core.Example
	record := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var fields map[string]any
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			return nil, &MalformedRecordError{Path: path, Record: record, Reason: fmt.Sprintf("invalid JSON: %v", err)}
		}
		example, err := toExample(path, record, fields, inputField, labelField)
		if err != nil {
			return nil, err
		}
		examples = append(examples, example)
		record++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return examples, nil
}

func toExample(path string, record int, fields map[string]any, inputField, labelField string) (core.Example, error) {
	input, err := stringField(path, record, fields, inputField)
	if err != nil {
		return core.Example{}, err
	}
	if input == "" {
		return core.Example{}, &MalformedRecordError{Path: path, Record: record, Reason: fmt.Sprintf("field %q is empty", inputField)}
	}
	label, err := stringField(path, record, fields, labelField)
	if err != nil {
		return core.Example{}, err
	}
	return core.Example{Input: input, Label: label}, nil
}

func stringField(path string, record int, fields map[string]any, name string) (string, error) {
	value, ok := fields[name]
	if !ok {
		return "", &MalformedRecordError{Path: path, Record: record, Reason: fmt.Sprintf("missing field %q", name)}
	}
	text, ok := value.(string)
	if !ok {
		return "", &MalformedRecordError{Path: path, Record: record, Reason: fmt.Sprintf("field %q is not a string", name)}
	}
	return text, nil
}
