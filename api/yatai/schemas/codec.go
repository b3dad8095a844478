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

package schemas

import (
	"encoding/json"

	"emperror.dev/errors"
	sigsyaml "sigs.k8s.io/yaml"
)

// Validator is implemented by schemas that declare required fields.
type Validator interface {
	Validate() error
}

// FromJSON decodes a wire document into a typed schema value. It fails with a
// ValidationError and no partial value when a field does not coerce or a
// declared-required field is missing.
func FromJSON[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, &ValidationError{Reason: "malformed document", Err: err}
	}
	if err := validate(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// FromYAML decodes a YAML document through the same json-tag driven mapping.
func FromYAML[T any](data []byte) (*T, error) {
	jsonData, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return nil, &ValidationError{Reason: "malformed yaml document", Err: err}
	}
	return FromJSON[T](jsonData)
}

// ToJSON encodes a typed schema value into its wire document.
func ToJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal schema")
	}
	return data, nil
}

// ToDocument round-trips a typed schema value into the generic document shape
// used by document-level merging.
func ToDocument(v any) (map[string]interface{}, error) {
	data, err := ToJSON(v)
	if err != nil {
		return nil, err
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unstructure schema")
	}
	return doc, nil
}

func validate(v any) error {
	val, ok := v.(Validator)
	if !ok {
		return nil
	}
	if err := val.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return &ValidationError{Reason: err.Error(), Err: err}
	}
	return nil
}
