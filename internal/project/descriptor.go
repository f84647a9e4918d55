package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/angular.schema.json
var descriptorSchemaBytes []byte

var (
	descriptorSchema     *jsonschema.Schema
	descriptorSchemaOnce sync.Once
	descriptorSchemaErr  error
)

// Descriptor is the subset of angular.json this tool reads.
type Descriptor struct {
	Projects map[string]DescriptorProject `json:"projects"`

	// names holds the project keys in document order.
	names []string
}

// DescriptorProject is one entry of the projects mapping.
type DescriptorProject struct {
	Root        string `json:"root"`
	SourceRoot  string `json:"sourceRoot"`
	ProjectType string `json:"projectType"`
}

// FirstProject returns the first project declared in the descriptor.
func (d *Descriptor) FirstProject() (string, DescriptorProject, bool) {
	if len(d.names) == 0 {
		return "", DescriptorProject{}, false
	}
	name := d.names[0]
	return name, d.Projects[name], true
}

// getDescriptorSchema compiles the embedded descriptor schema once.
func getDescriptorSchema() (*jsonschema.Schema, error) {
	descriptorSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(descriptorSchemaBytes))
		if err != nil {
			descriptorSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("angular.schema.json", doc); err != nil {
			descriptorSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		descriptorSchema, descriptorSchemaErr = c.Compile("angular.schema.json")
		if descriptorSchemaErr != nil {
			descriptorSchemaErr = fmt.Errorf("compiling schema: %w", descriptorSchemaErr)
		}
	})
	return descriptorSchema, descriptorSchemaErr
}

// readDescriptor reads, schema-checks, and decodes root/angular.json.
func readDescriptor(root string) (*Descriptor, error) {
	path := filepath.Join(root, DescriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseDescriptor(data)
}

func parseDescriptor(data []byte) (*Descriptor, error) {
	schema, err := getDescriptorSchema()
	if err != nil {
		return nil, fmt.Errorf("loading descriptor schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, DescriptorFile, err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, DescriptorFile, err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, DescriptorFile, err)
	}

	names, err := projectNames(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, DescriptorFile, err)
	}
	d.names = names

	return &d, nil
}

// projectNames returns the keys of the projects object in document order.
// Go maps are unordered, so the object is walked token by token.
func projectNames(data []byte) ([]string, error) {
	var top struct {
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(top.Projects))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var names []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in projects", tok)
		}
		names = append(names, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return names, nil
}
