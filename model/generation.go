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

package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// clientFunctionCallIDPrefix marks function-call IDs generated on the
// client side, so they can be told apart from model-assigned IDs.
const clientFunctionCallIDPrefix = "vfn-"

// FunctionCall is the function-call payload a model attaches to an
// assistant message when it decides to invoke a declared function.
type FunctionCall struct {
	// ID is the optional call identifier. Some models leave it empty.
	ID string `json:"id,omitempty"`
	// Name of the declared function being called.
	Name string `json:"name"`
	// Arguments is the JSON-encoded argument object.
	Arguments string `json:"arguments"`
}

// Message is an assistant chat message, optionally carrying a
// function-call payload alongside its text content.
type Message struct {
	Content      string        `json:"content"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
}

// Generation is one result of a model generation. The concrete kinds
// are TextGeneration and ChatGeneration.
type Generation interface {
	// Text returns the generation's plain text content.
	Text() string
}

// TextGeneration is a freeform text completion with no message
// structure attached.
type TextGeneration struct {
	Content string
}

// Text implements Generation.
func (g *TextGeneration) Text() string { return g.Content }

// ChatGeneration is a chat-style generation carrying a full assistant
// message.
type ChatGeneration struct {
	Message *Message
}

// Text implements Generation.
func (g *ChatGeneration) Text() string {
	if g.Message == nil {
		return ""
	}
	return g.Message.Content
}

// NewFunctionCallMessage synthesizes an assistant message carrying a
// call to the named function with the JSON encoding of args as its
// arguments. The call gets a fresh client-side ID.
func NewFunctionCallMessage(name string, args any) (*Message, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	return &Message{
		FunctionCall: &FunctionCall{
			ID:        clientFunctionCallIDPrefix + uuid.NewString(),
			Name:      name,
			Arguments: string(encoded),
		},
	}, nil
}
