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

type DeploymentRevisionSchema struct {
	ResourceSchema
	Creator *UserSchema                           `json:"creator,omitempty"`
	Status  modelschemas.DeploymentRevisionStatus `json:"status" enum:"active,inactive"`
	Targets []*DeploymentTargetSchema             `json:"targets"`
}

func (s *DeploymentRevisionSchema) Validate() error {
	if err := s.ResourceSchema.Validate(); err != nil {
		return err
	}
	for _, target := range s.Targets {
		if target == nil {
			continue
		}
		if err := target.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type DeploymentRevisionListSchema struct {
	BaseListSchema
	Items []*DeploymentRevisionSchema `json:"items"`
}
