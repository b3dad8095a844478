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

package deployment

import (
	"strings"

	"github.com/ettle/strcase"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
)

// ConfigValue is one flat flag pair: a dot-delimited path and its raw string
// value.
type ConfigValue struct {
	Path  string
	Value string
}

// ConfigValues is an ordered collection of flag pairs. Order is preserved by
// every projection so that last-write-wins stays deterministic.
type ConfigValues []ConfigValue

// FilterPrefix retains only the pairs whose path begins with stem, with stem
// stripped. Pure projection: surviving order preserved, values untouched.
func (vs ConfigValues) FilterPrefix(stem string) ConfigValues {
	bare := strings.TrimSuffix(stem, ".")
	dotted := bare + "."
	var out ConfigValues
	for _, v := range vs {
		switch {
		case v.Path == bare:
			out = append(out, ConfigValue{Path: "", Value: v.Value})
		case strings.HasPrefix(v.Path, dotted):
			out = append(out, ConfigValue{Path: strings.TrimPrefix(v.Path, dotted), Value: v.Value})
		}
	}
	return out
}

// ParseConfigValue splits a "dotted.path=value" token on the first "=".
func ParseConfigValue(token string) (ConfigValue, error) {
	path, value, found := strings.Cut(token, "=")
	if !found || path == "" {
		return ConfigValue{}, &UserInputError{Token: token, Reason: "expected dotted.path=value"}
	}
	return ConfigValue{Path: path, Value: value}, nil
}

// ParseEnv splits a "KEY=VALUE" token on the first "=", so values may
// themselves contain "=".
func ParseEnv(token string) (modelschemas.LabelItemSchema, error) {
	key, value, found := strings.Cut(token, "=")
	if !found || key == "" {
		return modelschemas.LabelItemSchema{}, &UserInputError{Token: token, Reason: "expected KEY=VALUE"}
	}
	return modelschemas.LabelItemSchema{Key: key, Value: value}, nil
}

// ParseLabel splits a "key:value" token on the first ":".
func ParseLabel(token string) (modelschemas.LabelItemSchema, error) {
	key, value, found := strings.Cut(token, ":")
	if !found || key == "" {
		return modelschemas.LabelItemSchema{}, &UserInputError{Token: token, Reason: "expected key:value"}
	}
	return modelschemas.LabelItemSchema{Key: key, Value: value}, nil
}

// normalizeSegment maps a fixed-vocabulary path segment to its snake_case
// wire form, so hpa_conf.minReplicas and hpa_conf.min_replicas resolve to the
// same field. Runner names are never normalized.
func normalizeSegment(segment string) string {
	return strcase.ToSnake(segment)
}
