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

// Package schema provides the JSON-Schema rewriting passes used to turn
// framework-side schemas into parameter schemas the Vertex AI
// function-calling API accepts: internal reference resolution, allOf
// flattening, and filtering of unsupported fields.
package schema

import "strings"

// Schema is a JSON-Schema-like mapping, as produced by decoding a JSON
// document or marshaling a structured type's schema. Nested schemas are
// plain map[string]any values and sequences are []any.
type Schema = map[string]any

// Dereference resolves internal $ref pointers ("#/definitions/...",
// "#/$defs/...") into inlined copies of their targets, recursively.
// References that do not point inside the document pass through
// unchanged. The input is treated read-only; the result shares no maps
// or slices with it. Schemas are assumed to be acyclic.
func Dereference(s Schema) Schema {
	out, ok := derefValue(s, s).(map[string]any)
	if !ok {
		return s
	}
	return out
}

func derefValue(v any, root Schema) any {
	switch val := v.(type) {
	case map[string]any:
		if ref, ok := val["$ref"].(string); ok {
			if target, ok := resolvePointer(ref, root); ok {
				return derefValue(target, root)
			}
		}
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = derefValue(elem, root)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = derefValue(elem, root)
		}
		return out
	default:
		return v
	}
}

// resolvePointer walks a JSON pointer of the form "#/a/b/c" through the
// root document.
func resolvePointer(ref string, root Schema) (any, bool) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, false
	}
	cur := any(root)
	for _, part := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}
