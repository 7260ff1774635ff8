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

package vertex

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sjzsdu/vertexfn-go/model"
)

var (
	// ErrWrongGeneration indicates the parser received something other
	// than a chat generation.
	ErrWrongGeneration = errors.New("function output parser works only on chat generations")
	// ErrNoFunctionCall indicates the message carried no function-call
	// payload.
	ErrNoFunctionCall = errors.New("could not parse function call")
	// ErrNoSchemaForFunction indicates a function name with no
	// registered structured type.
	ErrNoSchemaForFunction = errors.New("no structured type registered for function")
	// ErrTextParseUnsupported indicates an attempt to parse freeform
	// text, which this parser never accepts.
	ErrTextParseUnsupported = errors.New("can only parse messages")
)

// FunctionsOutputParser extracts the function-call payload from a chat
// generation and instantiates the matching structured type from the
// call's JSON arguments. Exactly one of Type and Types should be set:
// Type parses every call with one fixed type, Types resolves the type
// by function name. The parser holds no other state and is safe for
// concurrent use.
type FunctionsOutputParser struct {
	// Type is the fixed structured type for every function call.
	Type *model.Type
	// Types maps function names to structured types. When set, it
	// takes precedence over Type.
	Types map[string]*model.Type
}

// ParseResult consumes the first generation of result, which must be a
// chat generation whose message carries a function call. Argument
// decoding and instance construction errors propagate unchanged.
func (p *FunctionsOutputParser) ParseResult(result []model.Generation) (any, error) {
	if len(result) == 0 {
		return nil, fmt.Errorf("%w, got an empty result", ErrWrongGeneration)
	}
	chat, ok := result[0].(*model.ChatGeneration)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrWrongGeneration, result[0])
	}
	message := chat.Message
	if message == nil || message.FunctionCall == nil {
		return nil, fmt.Errorf("%w: %+v", ErrNoFunctionCall, message)
	}
	call := message.FunctionCall

	typ := p.Type
	if p.Types != nil {
		if typ, ok = p.Types[call.Name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrNoSchemaForFunction, call.Name)
		}
	}
	if typ == nil {
		return nil, fmt.Errorf("%w %q", ErrNoSchemaForFunction, call.Name)
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		return nil, err
	}
	return typ.New(args)
}

// Parse always fails: this parser only accepts structured chat
// generations, never freeform text.
func (p *FunctionsOutputParser) Parse(text string) (any, error) {
	return nil, ErrTextParseUnsupported
}
