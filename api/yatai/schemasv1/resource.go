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

package schemasv1

import (
	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

type IResourceSchema interface {
	GetType() modelschemas.ResourceType
	GetName() string
}

type ResourceSchema struct {
	BaseSchema
	Name         string                    `json:"name"`
	ResourceType modelschemas.ResourceType `json:"resource_type" enum:"user,organization,cluster,bento_repository,bento,model_repository,model,deployment,deployment_revision,deployment_target"`
}

func (r ResourceSchema) GetType() modelschemas.ResourceType {
	return r.ResourceType
}

func (r ResourceSchema) GetName() string {
	return r.Name
}

func (r *ResourceSchema) TypeName() string {
	return string(r.ResourceType)
}

func (r *ResourceSchema) Validate() error {
	if err := r.BaseSchema.Validate(); err != nil {
		return err
	}
	if r.Name == "" {
		return &schemas.ValidationError{Field: "name", Reason: "required field is missing"}
	}
	if r.ResourceType == "" {
		return &schemas.ValidationError{Field: "resource_type", Reason: "required field is missing"}
	}
	return nil
}
