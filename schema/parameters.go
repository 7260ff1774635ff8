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

package schema

// FilterParameters returns a copy of the flattened schema with the
// fields the Vertex AI function-calling API rejects removed: title and
// the definitions block (both its classic and draft-2020 "$defs"
// spellings), at the top level and recursively through items and each
// properties value. Every other field passes through verbatim, so
// schema vocabulary this package does not know about still reaches the
// API unchanged. Only fields present in the input appear in the output.
func FilterParameters(s Schema) Schema {
	out := make(Schema, len(s))
	for k, v := range s {
		switch k {
		case "title", "definitions", "$defs":
			// Rejected by the API.
		case "items":
			if m, ok := v.(map[string]any); ok {
				out[k] = FilterParameters(m)
			} else {
				out[k] = v
			}
		case "properties":
			props, ok := v.(map[string]any)
			if !ok {
				out[k] = v
				continue
			}
			filtered := make(map[string]any, len(props))
			for name, prop := range props {
				if m, ok := prop.(map[string]any); ok {
					filtered[name] = FilterParameters(m)
				} else {
					filtered[name] = prop
				}
			}
			out[k] = filtered
		default:
			out[k] = v
		}
	}
	return out
}
