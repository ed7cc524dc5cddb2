// Package jobfile reads job sets from YAML or JSON documents.
//
// Two shapes are accepted:
//
//	name: weekly
//	jobs:
//	  - {id: a, deadline: 2, profit: 100}
//
// or a bare list of jobs. JSON input is parsed by the same YAML decoder.
package jobfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/me/jobseq/pkg/model"
	"gopkg.in/yaml.v3"
)

// JobSet is a named collection of jobs to sequence.
type JobSet struct {
	Name string      `yaml:"name" json:"name"`
	Jobs []model.Job `yaml:"jobs" json:"jobs"`
}

// ErrEmpty is returned for documents without any content.
var ErrEmpty = errors.New("job file is empty")

// Load reads and parses the job file at path. When the document has no
// name, the file name without extension is used.
func Load(path string) (*JobSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if set.Name == "" {
		base := filepath.Base(path)
		set.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return set, nil
}

// Parse decodes a job set document. Unknown fields are rejected.
func Parse(data []byte) (*JobSet, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmpty
	}

	var set JobSet
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := decodeStrict(data, &set.Jobs); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		if err := decodeStrict(data, &set); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("parse job file: expected a mapping or a list of jobs at line %d", doc.Line)
	}

	if set.Jobs == nil {
		set.Jobs = []model.Job{}
	}
	return &set, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse job file: %w", err)
	}
	return nil
}

// Marshal renders set as YAML in the format Load accepts.
func Marshal(set *JobSet) ([]byte, error) {
	return yaml.Marshal(set)
}
