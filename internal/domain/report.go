package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FileExtraction is the result of extracting one source file: the file's
// base name and its test functions in discovery order. It serializes as
// {"source": ..., "functions": {<fn>: [cases...], ...}} with the functions
// object keeping discovery order, since consumers diff the output.
type FileExtraction struct {
	Source    string
	Functions []FunctionCases
}

// TotalCases returns the number of cases across all functions.
func (f *FileExtraction) TotalCases() int {
	total := 0
	for _, fn := range f.Functions {
		total += len(fn.Cases)
	}
	return total
}

// OpaqueCases returns the number of cases whose expected value fell through
// to the opaque fallback.
func (f *FileExtraction) OpaqueCases() int {
	total := 0
	for _, fn := range f.Functions {
		for _, tc := range fn.Cases {
			if tc.Expected.Kind == KindOpaque {
				total++
			}
		}
	}
	return total
}

func (f FileExtraction) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"source":`)
	src, err := json.Marshal(f.Source)
	if err != nil {
		return nil, err
	}
	buf.Write(src)
	buf.WriteString(`,"functions":{`)
	for i, fn := range f.Functions {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(fn.Function)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		cases, err := json.Marshal(fn.Cases)
		if err != nil {
			return nil, err
		}
		buf.Write(cases)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func (f *FileExtraction) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("file extraction: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		switch key {
		case "source":
			if err := dec.Decode(&f.Source); err != nil {
				return err
			}
		case "functions":
			if err := f.decodeFunctions(dec); err != nil {
				return err
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
		}
	}
	_, err = dec.Token() // closing brace
	return err
}

// decodeFunctions walks the functions object with the token stream so the
// on-disk key order survives the round trip.
func (f *FileExtraction) decodeFunctions(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("file extraction: expected functions object, got %v", tok)
	}
	f.Functions = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)
		var cases []TestCase
		if err := dec.Decode(&cases); err != nil {
			return err
		}
		f.Functions = append(f.Functions, FunctionCases{Function: name, Cases: cases})
	}
	_, err = dec.Token()
	return err
}

// ExtractMeta summarizes an extraction run.
type ExtractMeta struct {
	TotalFiles      int     `json:"total_files"`
	TotalFunctions  int     `json:"total_functions"`
	TotalCases      int     `json:"total_cases"`
	OpaqueCases     int     `json:"opaque_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ExtractOutput is the complete persisted output of a directory run.
type ExtractOutput struct {
	Meta  ExtractMeta      `json:"meta"`
	Files []FileExtraction `json:"files"`
}
