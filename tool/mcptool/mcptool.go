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

// Package mcptool adapts MCP tool definitions so they can be declared
// to a function-calling model like any other tool.
package mcptool

import (
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sjzsdu/vertexfn-go/model"
	"github.com/sjzsdu/vertexfn-go/tool"
)

// ErrInvalidTool indicates an MCP tool definition that cannot be
// adapted.
var ErrInvalidTool = errors.New("invalid mcp tool")

// New adapts an MCP tool definition to tool.Tool. A tool without an
// input schema is declared as taking a single free-form string, the
// same as any other schema-less tool.
func New(t *mcp.Tool) (tool.Tool, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tool", ErrInvalidTool)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidTool)
	}

	// InputSchema is a pointer; keep ArgsType nil rather than wrapping
	// a nil schema, so the schema-less declaration path applies.
	var args *model.Type
	if t.InputSchema != nil {
		typ, err := model.FromSchema(t.Name, t.Description, t.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTool, err)
		}
		args = typ
	}
	return &mcpTool{
		name:        t.Name,
		description: t.Description,
		args:        args,
	}, nil
}

type mcpTool struct {
	name        string
	description string
	args        *model.Type
}

// Name implements tool.Tool.
func (t *mcpTool) Name() string { return t.name }

// Description implements tool.Tool.
func (t *mcpTool) Description() string { return t.description }

// ArgsType implements tool.Tool.
func (t *mcpTool) ArgsType() *model.Type { return t.args }
