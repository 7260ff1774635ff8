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

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedAllOf indicates an allOf combinator that is not a
// singleton list. The Vertex AI API does not accept allOf, and only the
// singleton form can be collapsed into its sole member.
var ErrUnsupportedAllOf = errors.New("allOf expected to be a singleton list")

// FlattenAllOf returns a copy of the dereferenced schema s with every
// singleton allOf combinator replaced by its sole member. The member
// keeps the outer title when one is present, and its description is the
// outer and inner descriptions joined by a single space. A zero- or
// multi-element allOf fails with ErrUnsupportedAllOf.
//
// The input must already be dereferenced; no $ref keys are resolved
// here and no cycle detection is performed.
func FlattenAllOf(s Schema) (Schema, error) {
	out := make(Schema, len(s))
	for k, v := range s {
		switch val := v.(type) {
		case map[string]any:
			if allOf, ok := val["allOf"]; ok {
				obj, err := collapseAllOf(val, allOf)
				if err != nil {
					return nil, err
				}
				out[k] = obj
				continue
			}
			nested, err := FlattenAllOf(val)
			if err != nil {
				return nil, err
			}
			out[k] = nested
		case []any:
			if len(val) == 0 {
				out[k] = val
				continue
			}
			if _, ok := val[0].(map[string]any); !ok {
				out[k] = val
				continue
			}
			elems := make([]any, len(val))
			for i, elem := range val {
				m, ok := elem.(map[string]any)
				if !ok {
					elems[i] = elem
					continue
				}
				nested, err := FlattenAllOf(m)
				if err != nil {
					return nil, err
				}
				elems[i] = nested
			}
			out[k] = elems
		default:
			out[k] = v
		}
	}
	return out, nil
}

// collapseAllOf replaces a schema value holding an allOf combinator
// with a copy of the combinator's single member, merging title and
// description from the enclosing value.
func collapseAllOf(outer map[string]any, allOf any) (map[string]any, error) {
	list, ok := allOf.([]any)
	if !ok || len(list) != 1 {
		return nil, fmt.Errorf("%w, received %v", ErrUnsupportedAllOf, allOf)
	}
	inner, ok := list[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, received %v", ErrUnsupportedAllOf, allOf)
	}

	obj := make(map[string]any, len(inner)+2)
	for k, v := range inner {
		obj[k] = v
	}

	// The outer title wins when the key is present, even if empty.
	title, ok := outer["title"]
	if !ok {
		if title, ok = obj["title"]; !ok {
			title = ""
		}
	}
	obj["title"] = title
	// Descriptions are joined by a single space. Either side may be
	// empty, producing a leading or trailing space; downstream callers
	// depend on this exact join.
	obj["description"] = strings.Join([]string{
		stringValue(outer, "description"),
		stringValue(inner, "description"),
	}, " ")
	return obj, nil
}

func stringValue(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
