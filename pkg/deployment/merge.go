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
	"encoding/json"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/bentoml/yatai-go/api/yatai/schemas"
	"github.com/bentoml/yatai-go/api/yatai/schemasv1"
)

// MergeDocuments merges two generic wire documents at the top level only:
// every key present in override replaces the existing value for that key in
// its entirety, every other key keeps the existing value. Nested objects are
// never merged recursively. Both inputs are left untouched.
func MergeDocuments(existing, override map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(override))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// ParseDocument reads a JSON or YAML deployment request document into the
// generic document shape.
func ParseDocument(data []byte) (map[string]interface{}, error) {
	jsonData, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return nil, &schemas.ValidationError{Reason: "malformed config document", Err: err}
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, &schemas.ValidationError{Reason: "config document is not an object", Err: err}
	}
	return doc, nil
}

// OverlayCreateDeploymentDocument merges override onto existing and decodes
// the result back into the typed create request.
func OverlayCreateDeploymentDocument(existing, override map[string]interface{}) (*schemasv1.CreateDeploymentSchema, error) {
	return overlayDocument[schemasv1.CreateDeploymentSchema](existing, override)
}

// OverlayUpdateDeploymentDocument is the update-shaped counterpart.
func OverlayUpdateDeploymentDocument(existing, override map[string]interface{}) (*schemasv1.UpdateDeploymentSchema, error) {
	return overlayDocument[schemasv1.UpdateDeploymentSchema](existing, override)
}

func overlayDocument[T any](existing, override map[string]interface{}) (*T, error) {
	merged := MergeDocuments(existing, override)
	data, err := json.Marshal(merged)
	if err != nil {
		return nil, &schemas.ValidationError{Reason: "re-encode merged document", Err: err}
	}
	return schemas.FromJSON[T](data)
}
