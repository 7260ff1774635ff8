// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model defines structured data-model types and the chat
// generation types exchanged with a function-calling model. A
// structured type pairs a JSON schema describing its fields with a
// constructor that validates a raw argument map and builds a typed
// instance from it.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/mitchellh/mapstructure"

	"github.com/sjzsdu/vertexfn-go/schema"
)

// ErrInvalidType indicates a Go type that cannot back a structured
// type, or a schema that cannot be resolved.
var ErrInvalidType = errors.New("invalid structured type")

// Config is the input to For.
type Config struct {
	// Name of the structured type. Defaults to the Go type name.
	Name string
	// Description is a human-readable description, recorded in the
	// schema's description field.
	Description string
	// Schema overrides the inferred JSON schema when set.
	Schema *jsonschema.Schema
}

// Type is a structured data-model type: it can describe itself as a
// JSON-Schema-like mapping and construct validated instances from a
// raw map of field values.
type Type struct {
	name        string
	description string
	schema      schema.Schema
	resolved    *jsonschema.Resolved
	build       func(map[string]any) (any, error)
}

// For returns a structured type backed by the Go type T. T must be a
// struct, a map, or a pointer to one of those. The schema is inferred
// from T unless cfg.Schema is set.
func For[T any](cfg Config) (*Type, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || (rt.Kind() != reflect.Struct && rt.Kind() != reflect.Map) {
		return nil, fmt.Errorf("%w: backing type must be a struct or a map, got %v", ErrInvalidType, rt)
	}

	js := cfg.Schema
	if js == nil {
		inferred, err := jsonschema.For[T](nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
		}
		js = inferred
	}

	name := cfg.Name
	if name == "" {
		name = rt.Name()
	}
	t, err := newType(name, cfg.Description, js)
	if err != nil {
		return nil, err
	}
	t.build = func(args map[string]any) (any, error) {
		var out T
		if err := decode(args, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	return t, nil
}

// FromSchema returns a structured type described by an existing JSON
// schema, with no backing Go type. Instances are the validated argument
// maps themselves. Used for tool definitions that arrive with a schema
// attached, such as MCP tools.
func FromSchema(name, description string, js *jsonschema.Schema) (*Type, error) {
	if js == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidType)
	}
	t, err := newType(name, description, js)
	if err != nil {
		return nil, err
	}
	t.build = func(args map[string]any) (any, error) {
		return args, nil
	}
	return t, nil
}

func newType(name, description string, js *jsonschema.Schema) (*Type, error) {
	resolved, err := js.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	m, err := schemaMap(js)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name, _ = m["title"].(string)
	}
	if description == "" {
		description, _ = m["description"].(string)
	}
	m["title"] = name
	if description != "" {
		m["description"] = description
	}
	return &Type{
		name:        name,
		description: description,
		schema:      m,
		resolved:    resolved,
	}, nil
}

// Name returns the type's name.
func (t *Type) Name() string { return t.name }

// Description returns the type's description, which may be empty.
func (t *Type) Description() string { return t.description }

// Schema returns the type's JSON-Schema-like description, including
// its title and description fields. Callers must not mutate the result.
func (t *Type) Schema() schema.Schema { return t.schema }

// New validates args against the type's schema and constructs an
// instance from it. For types built with For the instance is a T value;
// for FromSchema types it is the argument map. Validation and decoding
// errors are returned unchanged.
func (t *Type) New(args map[string]any) (any, error) {
	if err := t.resolved.Validate(args); err != nil {
		return nil, err
	}
	return t.build(args)
}

// schemaMap converts a jsonschema.Schema into its mapping form via its
// JSON encoding.
func schemaMap(js *jsonschema.Schema) (schema.Schema, error) {
	data, err := json.Marshal(js)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	var m schema.Schema
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	return m, nil
}

// decode fills out from a raw argument map, honoring json field tags.
func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}
