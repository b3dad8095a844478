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

type DeploymentStatus string

const (
	DeploymentStatusUnknown     DeploymentStatus = "unknown"
	DeploymentStatusNonDeployed DeploymentStatus = "non-deployed"
	DeploymentStatusRunning     DeploymentStatus = "running"
	DeploymentStatusUnhealthy   DeploymentStatus = "unhealthy"
	DeploymentStatusFailed      DeploymentStatus = "failed"
	DeploymentStatusDeploying   DeploymentStatus = "deploying"
)

func (s *DeploymentStatus) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "status", s,
		DeploymentStatusUnknown,
		DeploymentStatusNonDeployed,
		DeploymentStatusRunning,
		DeploymentStatusUnhealthy,
		DeploymentStatusFailed,
		DeploymentStatusDeploying,
	)
}

type DeploymentRevisionStatus string

const (
	DeploymentRevisionStatusActive   DeploymentRevisionStatus = "active"
	DeploymentRevisionStatusInactive DeploymentRevisionStatus = "inactive"
)

func (s *DeploymentRevisionStatus) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "status", s,
		DeploymentRevisionStatusActive,
		DeploymentRevisionStatusInactive,
	)
}
