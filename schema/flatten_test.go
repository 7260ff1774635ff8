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

package schema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sjzsdu/vertexfn-go/schema"
)

func TestFlattenAllOf(t *testing.T) {
	tests := []struct {
		name string
		in   schema.Schema
		want schema.Schema
	}{
		{
			name: "no allOf returns input unchanged",
			in: schema.Schema{
				"title": "Query",
				"type":  "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "integer", "minimum": float64(0)},
					"tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"limit"},
			},
			want: schema.Schema{
				"title": "Query",
				"type":  "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "integer", "minimum": float64(0)},
					"tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"limit"},
			},
		},
		{
			name: "singleton allOf collapses with title and description merge",
			in: schema.Schema{
				"x": map[string]any{
					"allOf":       []any{map[string]any{"type": "string", "description": "d2"}},
					"title":       "T",
					"description": "d1",
				},
			},
			want: schema.Schema{
				"x": map[string]any{
					"type":        "string",
					"title":       "T",
					"description": "d1 d2",
				},
			},
		},
		{
			name: "inner title survives when outer has none",
			in: schema.Schema{
				"x": map[string]any{
					"allOf": []any{map[string]any{"type": "string", "title": "Inner"}},
				},
			},
			want: schema.Schema{
				"x": map[string]any{
					"type":        "string",
					"title":       "Inner",
					"description": " ",
				},
			},
		},
		{
			name: "recurses through nested mappings and sequences",
			in: schema.Schema{
				"properties": map[string]any{
					"color": map[string]any{
						"allOf": []any{map[string]any{"enum": []any{"red", "green"}}},
					},
				},
				"anyOf": []any{
					map[string]any{
						"inner": map[string]any{
							"allOf":       []any{map[string]any{"type": "integer"}},
							"description": "outer",
						},
					},
				},
			},
			want: schema.Schema{
				"properties": map[string]any{
					"color": map[string]any{
						"enum":        []any{"red", "green"},
						"title":       "",
						"description": " ",
					},
				},
				"anyOf": []any{
					map[string]any{
						"inner": map[string]any{
							"type":        "integer",
							"title":       "",
							"description": "outer ",
						},
					},
				},
			},
		},
		{
			name: "scalar sequences copy unchanged",
			in: schema.Schema{
				"enum": []any{"a", "b"},
			},
			want: schema.Schema{
				"enum": []any{"a", "b"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.FlattenAllOf(tt.in)
			if err != nil {
				t.Fatalf("FlattenAllOf() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FlattenAllOf() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenAllOf_UnsupportedShapes(t *testing.T) {
	tests := []struct {
		name string
		in   schema.Schema
	}{
		{
			name: "empty allOf",
			in: schema.Schema{
				"x": map[string]any{"allOf": []any{}},
			},
		},
		{
			name: "two-element allOf",
			in: schema.Schema{
				"x": map[string]any{"allOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"minLength": float64(1)},
				}},
			},
		},
		{
			name: "allOf is not a list",
			in: schema.Schema{
				"x": map[string]any{"allOf": map[string]any{"type": "string"}},
			},
		},
		{
			name: "nested under properties",
			in: schema.Schema{
				"properties": map[string]any{
					"x": map[string]any{"allOf": []any{}},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := schema.FlattenAllOf(tt.in); !errors.Is(err, schema.ErrUnsupportedAllOf) {
				t.Errorf("FlattenAllOf() error = %v, want ErrUnsupportedAllOf", err)
			}
		})
	}
}
