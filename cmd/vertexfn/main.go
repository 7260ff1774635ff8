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

// vertexfn converts a JSON array of raw function descriptions of the
// form {"name": ..., "description": ..., "parameters": ...} into the
// Vertex AI tool bundle that would be sent to the model, and prints it
// as JSON. Useful for checking what a set of tool definitions looks
// like after dereferencing, allOf flattening, and field filtering.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sjzsdu/vertexfn-go/vertex"
)

func main() {
	input := flag.String("in", "-", "path to a JSON array of function descriptions, or - for stdin")
	compact := flag.Bool("compact", false, "print compact JSON instead of indented")
	flag.Parse()

	if err := run(*input, *compact, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(input string, compact bool, w io.Writer) error {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode function descriptions: %w", err)
	}

	inputs := make([]vertex.Input, 0, len(raw))
	for _, m := range raw {
		inputs = append(inputs, vertex.ForMap(m))
	}
	bundle, err := vertex.Tools(inputs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(bundle)
}
