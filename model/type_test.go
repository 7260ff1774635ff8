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

package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/sjzsdu/vertexfn-go/model"
)

type Cookie struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestFor(t *testing.T) {
	typ, err := model.For[Cookie](model.Config{Description: "a cookie"})
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if got, want := typ.Name(), "Cookie"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := typ.Description(), "a cookie"; got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}

	s := typ.Schema()
	if got, want := s["title"], any("Cookie"); got != want {
		t.Errorf("schema title = %v, want %v", got, want)
	}
	if got, want := s["description"], any("a cookie"); got != want {
		t.Errorf("schema description = %v, want %v", got, want)
	}
	props, ok := s["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties mapping: %v", s)
	}
	for _, field := range []string{"name", "age"} {
		if _, ok := props[field]; !ok {
			t.Errorf("schema properties missing %q: %v", field, props)
		}
	}
}

func TestFor_NameOverride(t *testing.T) {
	typ, err := model.For[Cookie](model.Config{Name: "cookie"})
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if got, want := typ.Name(), "cookie"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := typ.Schema()["title"], any("cookie"); got != want {
		t.Errorf("schema title = %v, want %v", got, want)
	}
}

func TestFor_RejectsNonStructTypes(t *testing.T) {
	if _, err := model.For[string](model.Config{}); !errors.Is(err, model.ErrInvalidType) {
		t.Errorf("For[string]() error = %v, want ErrInvalidType", err)
	}
	if _, err := model.For[[]int](model.Config{}); !errors.Is(err, model.ErrInvalidType) {
		t.Errorf("For[[]int]() error = %v, want ErrInvalidType", err)
	}
}

func TestType_New(t *testing.T) {
	typ, err := model.For[Cookie](model.Config{})
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}

	// Argument maps arrive JSON-decoded, so numbers are float64.
	got, err := typ.New(map[string]any{"name": "value", "age": float64(10)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if diff := cmp.Diff(Cookie{Name: "value", Age: 10}, got); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
}

func TestType_NewValidationFailure(t *testing.T) {
	typ, err := model.For[Cookie](model.Config{})
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if _, err := typ.New(map[string]any{"name": "value", "age": "ten"}); err == nil {
		t.Error("New() with mistyped field succeeded, want validation error")
	}
}

func TestFromSchema(t *testing.T) {
	js := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"city": {Type: "string"},
		},
	}
	typ, err := model.FromSchema("lookup", "looks things up", js)
	if err != nil {
		t.Fatalf("FromSchema() error = %v", err)
	}
	if got, want := typ.Name(), "lookup"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}

	got, err := typ.New(map[string]any{"city": "london"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if diff := cmp.Diff(map[string]any{"city": "london"}, got); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSchema_NilSchema(t *testing.T) {
	if _, err := model.FromSchema("x", "", nil); !errors.Is(err, model.ErrInvalidType) {
		t.Errorf("FromSchema(nil) error = %v, want ErrInvalidType", err)
	}
}
