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
	"testing"

	"github.com/onsi/gomega"
)

func TestDeploymentTargetConfigFingerprint(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	// Must terminate even for the zero config.
	_, err := (&DeploymentTargetConfig{}).Fingerprint()
	g.Expect(err).NotTo(gomega.HaveOccurred())

	minReplicas := int32(1)
	conf := &DeploymentTargetConfig{
		Resources: &DeploymentTargetResources{
			Requests: &DeploymentTargetResourceItem{CPU: "500m"},
		},
		HPAConf: &DeploymentTargetHPAConf{MinReplicas: &minReplicas},
		Envs:    LabelItemsSchema{{Key: "STAGE", Value: "prod"}},
	}
	first, err := conf.Fingerprint()
	g.Expect(err).NotTo(gomega.HaveOccurred())

	same := &DeploymentTargetConfig{
		Resources: &DeploymentTargetResources{
			Requests: &DeploymentTargetResourceItem{CPU: "500m"},
		},
		HPAConf: &DeploymentTargetHPAConf{MinReplicas: &minReplicas},
		Envs:    LabelItemsSchema{{Key: "STAGE", Value: "prod"}},
	}
	second, err := same.Fingerprint()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(second).To(gomega.Equal(first))

	conf.Resources.Requests.CPU = "1000m"
	changed, err := conf.Fingerprint()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(changed).NotTo(gomega.Equal(first))
}
