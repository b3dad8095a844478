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

package modelschemas

import "github.com/bentoml/yatai-go/api/yatai/schemas"

type ResourceType string

const (
	ResourceTypeUser            ResourceType = "user"
	ResourceTypeOrganization    ResourceType = "organization"
	ResourceTypeCluster         ResourceType = "cluster"
	ResourceTypeBentoRepository ResourceType = "bento_repository"
	ResourceTypeBento           ResourceType = "bento"
	ResourceTypeModelRepository ResourceType = "model_repository"
	ResourceTypeModel           ResourceType = "model"

	ResourceTypeDeployment         ResourceType = "deployment"
	ResourceTypeDeploymentRevision ResourceType = "deployment_revision"
	ResourceTypeDeploymentTarget   ResourceType = "deployment_target"
)

func (r ResourceType) Ptr() *ResourceType {
	return &r
}

func (r *ResourceType) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "resource_type", r,
		ResourceTypeUser,
		ResourceTypeOrganization,
		ResourceTypeCluster,
		ResourceTypeBentoRepository,
		ResourceTypeBento,
		ResourceTypeModelRepository,
		ResourceTypeModel,
		ResourceTypeDeployment,
		ResourceTypeDeploymentRevision,
		ResourceTypeDeploymentTarget,
	)
}
