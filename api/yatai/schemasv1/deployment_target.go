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

type DeploymentTargetTypeSchema struct {
	Type modelschemas.DeploymentTargetType `json:"type" enum:"stable,canary"`
}

type DeploymentTargetSchema struct {
	ResourceSchema
	DeploymentTargetTypeSchema
	Creator     *UserSchema                              `json:"creator,omitempty"`
	Bento       *BentoFullSchema                         `json:"bento"`
	CanaryRules modelschemas.DeploymentTargetCanaryRules `json:"canary_rules"`
	Config      *modelschemas.DeploymentTargetConfig     `json:"config"`
}

func (s *DeploymentTargetSchema) Validate() error {
	if err := s.ResourceSchema.Validate(); err != nil {
		return err
	}
	if s.Bento != nil {
		return s.Bento.Validate()
	}
	return nil
}

type DeploymentTargetListSchema struct {
	BaseListSchema
	Items []*DeploymentTargetSchema `json:"items"`
}

type CreateDeploymentTargetSchema struct {
	DeploymentTargetTypeSchema
	BentoRepository string                                   `json:"bento_repository"`
	Bento           string                                   `json:"bento"`
	CanaryRules     modelschemas.DeploymentTargetCanaryRules `json:"canary_rules"`
	Config          *modelschemas.DeploymentTargetConfig     `json:"config"`
}

func (s *CreateDeploymentTargetSchema) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.BentoRepository, validation.Required),
		validation.Field(&s.Bento, validation.Required),
		validation.Field(&s.Config, validation.Required),
	)
}
