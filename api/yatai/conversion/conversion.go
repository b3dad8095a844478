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

// Package conversion rebuilds request payloads from previously fetched
// resources, for partial-update flows that start from remote state.
package conversion

import (
	"emperror.dev/errors"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemasv1"
)

func ConvertToDeploymentTargetResourceItem(src *modelschemas.DeploymentTargetResourceItem) (dest *modelschemas.DeploymentTargetResourceItem) {
	if src == nil {
		return
	}
	dest = &modelschemas.DeploymentTargetResourceItem{
		CPU:    src.CPU,
		Memory: src.Memory,
		GPU:    src.GPU,
		Custom: src.Custom,
	}
	return
}

func ConvertToDeploymentTargetResources(src *modelschemas.DeploymentTargetResources) (dest *modelschemas.DeploymentTargetResources) {
	if src == nil {
		return
	}
	dest = &modelschemas.DeploymentTargetResources{
		Requests: ConvertToDeploymentTargetResourceItem(src.Requests),
		Limits:   ConvertToDeploymentTargetResourceItem(src.Limits),
	}
	return
}

// ConvertToCreateDeploymentTargetSchema turns a fetched deployment target back
// into the request payload that would recreate it, so callers can overlay
// changes onto it before resubmission.
func ConvertToCreateDeploymentTargetSchema(src *schemasv1.DeploymentTargetSchema) (dest *schemasv1.CreateDeploymentTargetSchema, err error) {
	if src == nil {
		err = errors.New("deployment target is nil")
		return
	}
	if src.Bento == nil || src.Bento.Repository == nil {
		err = errors.New("deployment target has no resolved bento repository")
		return
	}
	dest = &schemasv1.CreateDeploymentTargetSchema{
		DeploymentTargetTypeSchema: schemasv1.DeploymentTargetTypeSchema{
			Type: modelschemas.DeploymentTargetTypeStable,
		},
		BentoRepository: src.Bento.Repository.Name,
		Bento:           src.Bento.Name,
		CanaryRules:     src.CanaryRules,
		Config:          src.Config,
	}
	return
}

// ConvertToUpdateDeploymentSchema rebuilds an update request from a fetched
// deployment's latest revision. Exactly one target is carried per revision on
// update.
func ConvertToUpdateDeploymentSchema(src *schemasv1.DeploymentSchema) (dest *schemasv1.UpdateDeploymentSchema, err error) {
	if src == nil {
		err = errors.New("deployment is nil")
		return
	}
	if src.LatestRevision == nil || len(src.LatestRevision.Targets) == 0 {
		err = errors.New("deployment has no latest revision targets")
		return
	}
	target, err := ConvertToCreateDeploymentTargetSchema(src.LatestRevision.Targets[0])
	if err != nil {
		err = errors.Wrap(err, "convert latest revision target")
		return
	}
	dest = &schemasv1.UpdateDeploymentSchema{
		Targets: []*schemasv1.CreateDeploymentTargetSchema{target},
	}
	return
}
