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

// Package vertex adapts tool and structured-type definitions into the
// Vertex AI function-calling API surface of google.golang.org/genai,
// and parses function-call responses back into typed values.
package vertex

import (
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/sjzsdu/vertexfn-go/model"
	"github.com/sjzsdu/vertexfn-go/schema"
	"github.com/sjzsdu/vertexfn-go/tool"
)

// ErrUnsupportedInput indicates a tool input that is none of the
// recognized variants.
var ErrUnsupportedInput = errors.New("unsupported tool input")

// FunctionDescription is the name/description/parameters triple handed
// to the provider's function-declaration constructor.
type FunctionDescription struct {
	Name        string
	Description string
	// Parameters is the filtered parameter schema, or nil when the
	// input carried none.
	Parameters schema.Schema
}

// Input selects one source of a function declaration. Use ForTool,
// ForType, or ForMap to construct one; the zero value is rejected.
type Input struct {
	tool tool.Tool
	typ  *model.Type
	raw  map[string]any
}

// ForTool declares a tool.
func ForTool(t tool.Tool) Input { return Input{tool: t} }

// ForType declares a structured type directly, so the model can be
// asked to produce instances of it.
func ForType(t *model.Type) Input { return Input{typ: t} }

// ForMap declares a raw function description of the form
// {"name": ..., "description": ..., "parameters": ...}.
func ForMap(m map[string]any) Input { return Input{raw: m} }

// describe funnels every input variant into a FunctionDescription.
func (in Input) describe() (*FunctionDescription, error) {
	switch {
	case in.tool != nil:
		return FunctionFromTool(in.tool)
	case in.typ != nil:
		return FunctionFromType(in.typ)
	case in.raw != nil:
		return functionFromMap(in.raw)
	default:
		return nil, fmt.Errorf("%w: empty input", ErrUnsupportedInput)
	}
}

// FunctionFromType formats a structured type into a function
// description: the schema's title names the function and its
// description, when present, describes it.
func FunctionFromType(t *model.Type) (*FunctionDescription, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil structured type", ErrUnsupportedInput)
	}
	s := t.Schema()
	params, err := parametersFromSchema(s)
	if err != nil {
		return nil, err
	}
	name, _ := s["title"].(string)
	description, _ := s["description"].(string)
	return &FunctionDescription{
		Name:        name,
		Description: description,
		Parameters:  params,
	}, nil
}

// FunctionFromTool formats a tool into a function description. The
// tool's own name and description win over the argument schema's title
// and description when non-empty. A tool without an argument schema is
// declared as taking a single required string argument named
// tool.SingleArgKey.
func FunctionFromTool(t tool.Tool) (*FunctionDescription, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tool", ErrUnsupportedInput)
	}
	args := t.ArgsType()
	if args == nil {
		return &FunctionDescription{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters: schema.Schema{
				"properties": map[string]any{
					tool.SingleArgKey: map[string]any{"type": "string"},
				},
				"required": []string{tool.SingleArgKey},
				"type":     "object",
			},
		}, nil
	}

	s := args.Schema()
	params, err := parametersFromSchema(s)
	if err != nil {
		return nil, err
	}
	name := t.Name()
	if name == "" {
		name, _ = s["title"].(string)
	}
	description := t.Description()
	if description == "" {
		description, _ = s["description"].(string)
	}
	return &FunctionDescription{
		Name:        name,
		Description: description,
		Parameters:  params,
	}, nil
}

// functionFromMap passes a raw function description through, filtering
// its parameters field.
func functionFromMap(m map[string]any) (*FunctionDescription, error) {
	name, ok := m["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: map input %v has no name", ErrUnsupportedInput, m)
	}
	description, _ := m["description"].(string)
	fd := &FunctionDescription{
		Name:        name,
		Description: description,
	}
	if p, ok := m["parameters"].(map[string]any); ok {
		params, err := parametersFromSchema(p)
		if err != nil {
			return nil, err
		}
		fd.Parameters = params
	}
	return fd, nil
}

// parametersFromSchema formats a schema into the parameter schema the
// Vertex AI API expects: dereference, flatten allOf combinators, then
// strip unsupported fields.
func parametersFromSchema(s schema.Schema) (schema.Schema, error) {
	flat, err := schema.FlattenAllOf(schema.Dereference(s))
	if err != nil {
		return nil, err
	}
	return schema.FilterParameters(flat), nil
}

// Declarations builds one function declaration per input, preserving
// input order. Any unsupported input aborts the whole batch.
func Declarations(inputs []Input) ([]*genai.FunctionDeclaration, error) {
	decls := make([]*genai.FunctionDeclaration, 0, len(inputs))
	for _, in := range inputs {
		fd, err := in.describe()
		if err != nil {
			return nil, err
		}
		decl := &genai.FunctionDeclaration{
			Name:        fd.Name,
			Description: fd.Description,
		}
		// Assign only when set: storing a nil map in the interface
		// field would serialize as an explicit null.
		if fd.Parameters != nil {
			decl.ParametersJsonSchema = fd.Parameters
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// Tools wraps the inputs' function declarations in a single provider
// tool bundle.
func Tools(inputs []Input) ([]*genai.Tool, error) {
	decls, err := Declarations(inputs)
	if err != nil {
		return nil, err
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}, nil
}
