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
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
)

type DeploymentSchema struct {
	ResourceSchema
	Creator        *UserSchema                   `json:"creator"`
	Cluster        *ClusterFullSchema            `json:"cluster"`
	Status         modelschemas.DeploymentStatus `json:"status" enum:"unknown,non-deployed,running,unhealthy,failed,deploying"`
	URLs           []string                      `json:"urls"`
	LatestRevision *DeploymentRevisionSchema     `json:"latest_revision"`
	KubeNamespace  string                        `json:"kube_namespace"`
}

// Validate recurses into the latest revision so a response with a malformed
// nested record fails decode as a whole.
func (s *DeploymentSchema) Validate() error {
	if err := s.ResourceSchema.Validate(); err != nil {
		return err
	}
	if s.LatestRevision != nil {
		return s.LatestRevision.Validate()
	}
	return nil
}

type DeploymentListSchema struct {
	BaseListSchema
	Items []*DeploymentSchema `json:"items"`
}

func (s *DeploymentListSchema) Validate() error {
	for _, d := range s.Items {
		if d == nil {
			continue
		}
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type UpdateDeploymentSchema struct {
	Targets     []*CreateDeploymentTargetSchema `json:"targets"`
	Labels      modelschemas.LabelItemsSchema   `json:"labels,omitempty"`
	Description *string                         `json:"description,omitempty"`
	DoNotDeploy bool                            `json:"do_not_deploy,omitempty"`
}

func (s *UpdateDeploymentSchema) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Targets, validation.Required, validation.Length(1, 0), validation.Each(validation.NotNil)),
	)
}

type CreateDeploymentSchema struct {
	Name          string `json:"name"`
	KubeNamespace string `json:"kube_namespace"`
	UpdateDeploymentSchema
}

func (s *CreateDeploymentSchema) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.KubeNamespace, validation.Required),
	); err != nil {
		return err
	}
	return s.UpdateDeploymentSchema.Validate()
}
