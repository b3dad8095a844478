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

import "github.com/bentoml/yatai-go/api/yatai/modelschemas"

type ClusterSchema struct {
	ResourceSchema
	Creator     *UserSchema `json:"creator,omitempty"`
	Description string      `json:"description"`
}

type ClusterFullSchema struct {
	ClusterSchema
	Organization *OrganizationSchema               `json:"organization"`
	KubeConfig   *string                           `json:"kube_config,omitempty"`
	Config       *modelschemas.ClusterConfigSchema `json:"config,omitempty"`
}

type ClusterListSchema struct {
	BaseListSchema
	Items []*ClusterSchema `json:"items"`
}

type CreateClusterSchema struct {
	Name        string                            `json:"name"`
	Description string                            `json:"description"`
	KubeConfig  string                            `json:"kube_config"`
	Config      *modelschemas.ClusterConfigSchema `json:"config,omitempty"`
}

type UpdateClusterSchema struct {
	Description *string                           `json:"description,omitempty"`
	KubeConfig  *string                           `json:"kube_config,omitempty"`
	Config      *modelschemas.ClusterConfigSchema `json:"config,omitempty"`
}
