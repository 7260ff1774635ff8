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

// Package functiontool provides a tool that wraps a Go function.
package functiontool

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/sjzsdu/vertexfn-go/model"
	"github.com/sjzsdu/vertexfn-go/tool"
)

// Config is the input to the New function.
type Config struct {
	// The name of this tool. Defaults to the argument type's name.
	Name string
	// A human-readable description of the tool.
	Description string
	// An optional JSON schema object defining the expected parameters
	// for the tool. If it is nil, the schema is inferred from the
	// handler's argument type.
	InputSchema *jsonschema.Schema
}

// Func represents a Go function that can be wrapped in a tool. It
// takes a context and a generic argument type.
type Func[TArgs any] func(ctx context.Context, args TArgs) (any, error)

// ErrInvalidArgument indicates the input parameter type is invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// New creates a new tool with a name, description, and the provided
// handler. The argument schema is inferred from TArgs unless an
// InputSchema override is given.
func New[TArgs any](cfg Config, handler Func[TArgs]) (tool.Callable, error) {
	if handler == nil {
		return nil, fmt.Errorf("nil handler: %w", ErrInvalidArgument)
	}
	args, err := model.For[TArgs](model.Config{
		Name:        cfg.Name,
		Description: cfg.Description,
		Schema:      cfg.InputSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to infer input schema: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = args.Name()
	}
	return &functionTool[TArgs]{
		cfg:     cfg,
		args:    args,
		handler: handler,
	}, nil
}

// functionTool wraps a Go function.
type functionTool[TArgs any] struct {
	cfg     Config
	args    *model.Type
	handler Func[TArgs]
}

// Name implements tool.Tool.
func (f *functionTool[TArgs]) Name() string {
	return f.cfg.Name
}

// Description implements tool.Tool.
func (f *functionTool[TArgs]) Description() string {
	return f.cfg.Description
}

// ArgsType implements tool.Tool.
func (f *functionTool[TArgs]) ArgsType() *model.Type {
	return f.args
}

// Call validates and decodes the argument map into TArgs and invokes
// the handler.
func (f *functionTool[TArgs]) Call(ctx context.Context, args map[string]any) (any, error) {
	v, err := f.args.New(args)
	if err != nil {
		return nil, err
	}
	input, ok := v.(TArgs)
	if !ok {
		return nil, fmt.Errorf("unexpected args type, got: %T", v)
	}
	return f.handler(ctx, input)
}

// NewSimple creates a tool that declares no argument schema. It is
// exposed to the model as taking a single required string argument
// named tool.SingleArgKey, which Call passes to the handler.
func NewSimple(name, description string, handler func(ctx context.Context, input string) (any, error)) (tool.Callable, error) {
	if name == "" {
		return nil, fmt.Errorf("empty tool name: %w", ErrInvalidArgument)
	}
	if handler == nil {
		return nil, fmt.Errorf("nil handler: %w", ErrInvalidArgument)
	}
	return &simpleTool{name: name, description: description, handler: handler}, nil
}

// simpleTool is a tool with a single free-form string argument.
type simpleTool struct {
	name        string
	description string
	handler     func(ctx context.Context, input string) (any, error)
}

// Name implements tool.Tool.
func (t *simpleTool) Name() string { return t.name }

// Description implements tool.Tool.
func (t *simpleTool) Description() string { return t.description }

// ArgsType implements tool.Tool. It always returns nil.
func (t *simpleTool) ArgsType() *model.Type { return nil }

// Call pulls the sentinel string argument out of args and invokes the
// handler.
func (t *simpleTool) Call(ctx context.Context, args map[string]any) (any, error) {
	input, ok := args[tool.SingleArgKey].(string)
	if !ok {
		return nil, fmt.Errorf("missing %q string argument: %w", tool.SingleArgKey, ErrInvalidArgument)
	}
	return t.handler(ctx, input)
}
