/*
Copyright 2024 The BentoML Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"emperror.dev/errors"
	"gopkg.in/yaml.v2"

	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "render json")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printYAML renders through the wire encoding so field names match the json
// tags rather than Go identifiers. The value may be a single document or a
// list of them.
func printYAML(w io.Writer, v any) error {
	jsonData, err := schemas.ToJSON(v)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return errors.Wrap(err, "unstructure response")
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "render yaml")
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}

func printTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, join(headers))
	for _, row := range rows {
		fmt.Fprintln(tw, join(row))
	}
	return tw.Flush()
}

func join(cells []string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += "\t"
		}
		out += c
	}
	return out
}
