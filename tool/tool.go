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

// Package tool defines the interface for tools that can be declared to
// a function-calling model. A tool carries a name, a description, and
// optionally a structured type describing its arguments.
package tool

import (
	"context"

	"github.com/sjzsdu/vertexfn-go/model"
)

// SingleArgKey is the sentinel property name used when declaring a
// tool that has no argument schema: such tools are exposed to the model
// as taking one required string argument under this key.
const SingleArgKey = "__arg1"

// Tool defines the interface for a declarable tool.
type Tool interface {
	// Name returns the name of the tool.
	Name() string
	// Description returns a description of the tool.
	Description() string
	// ArgsType returns the structured type describing the tool's
	// arguments, or nil when the tool declares no argument schema and
	// takes a single free-form string instead.
	ArgsType() *model.Type
}

// Callable is implemented by tools that can be invoked directly with
// the argument map a model supplies in a function call.
type Callable interface {
	Tool
	// Call invokes the tool. For tools without an argument schema the
	// input string is found under SingleArgKey.
	Call(ctx context.Context, args map[string]any) (any, error)
}
