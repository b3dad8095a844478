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

type DeploymentTargetCanaryRuleType string

const (
	DeploymentTargetCanaryRuleTypeWeight DeploymentTargetCanaryRuleType = "weight"
	DeploymentTargetCanaryRuleTypeHeader DeploymentTargetCanaryRuleType = "header"
	DeploymentTargetCanaryRuleTypeCookie DeploymentTargetCanaryRuleType = "cookie"
)

func (t *DeploymentTargetCanaryRuleType) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "type", t,
		DeploymentTargetCanaryRuleTypeWeight,
		DeploymentTargetCanaryRuleTypeHeader,
		DeploymentTargetCanaryRuleTypeCookie,
	)
}

type DeploymentTargetCanaryRule struct {
	Type DeploymentTargetCanaryRuleType `json:"type" enum:"weight,header,cookie"`

	Weight      *uint   `json:"weight,omitempty"`
	Header      *string `json:"header,omitempty"`
	Cookie      *string `json:"cookie,omitempty"`
	HeaderValue *string `json:"header_value,omitempty"`
}

type DeploymentTargetCanaryRules []*DeploymentTargetCanaryRule
