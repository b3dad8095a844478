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

import (
	"emperror.dev/errors"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

type DeploymentTargetType string

const (
	DeploymentTargetTypeStable DeploymentTargetType = "stable"
	DeploymentTargetTypeCanary DeploymentTargetType = "canary"
)

func (t *DeploymentTargetType) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "type", t,
		DeploymentTargetTypeStable,
		DeploymentTargetTypeCanary,
	)
}

type DeploymentTargetResourceItem struct {
	CPU    string            `json:"cpu,omitempty"`
	Memory string            `json:"memory,omitempty"`
	GPU    string            `json:"gpu,omitempty"`
	Custom map[string]string `json:"custom,omitempty"`
}

type DeploymentTargetResources struct {
	Requests *DeploymentTargetResourceItem `json:"requests,omitempty"`
	Limits   *DeploymentTargetResourceItem `json:"limits,omitempty"`
}

type DeploymentTargetHPAConf struct {
	CPU         *int32  `json:"cpu,omitempty"`
	GPU         *int32  `json:"gpu,omitempty"`
	Memory      *string `json:"memory,omitempty"`
	QPS         *int64  `json:"qps,omitempty"`
	MinReplicas *int32  `json:"min_replicas,omitempty"`
	MaxReplicas *int32  `json:"max_replicas,omitempty"`
}

type DeploymentTargetRunnerConfig struct {
	Resources *DeploymentTargetResources `json:"resources,omitempty"`
	HPAConf   *DeploymentTargetHPAConf   `json:"hpa_conf,omitempty"`
	Envs      LabelItemsSchema           `json:"envs,omitempty"`
}

type DeploymentTargetConfig struct {
	KubeResourceUid     string                                  `json:"kubeResourceUid"`
	KubeResourceVersion string                                  `json:"kubeResourceVersion"`
	Resources           *DeploymentTargetResources              `json:"resources"`
	HPAConf             *DeploymentTargetHPAConf                `json:"hpa_conf,omitempty"`
	Envs                LabelItemsSchema                        `json:"envs,omitempty"`
	Runners             map[string]DeploymentTargetRunnerConfig `json:"runners,omitempty"`
	EnableIngress       *bool                                   `json:"enable_ingress,omitempty"`
}

// Fingerprint is a structural hash of the config. Two configs fingerprint
// equal iff they are field-by-field equal, so callers can skip no-op update
// submissions. Not named Hash: hashstructure dispatches back into any method
// with that exact signature.
func (c *DeploymentTargetConfig) Fingerprint() (uint64, error) {
	hash, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, errors.Wrap(err, "hash deployment target config")
	}
	return hash, nil
}
