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

package conversion

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemasv1"
)

func TestConvertToCreateDeploymentTargetSchema(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	conf := &modelschemas.DeploymentTargetConfig{
		Resources: &modelschemas.DeploymentTargetResources{
			Requests: &modelschemas.DeploymentTargetResourceItem{CPU: "500m"},
		},
	}
	src := &schemasv1.DeploymentTargetSchema{
		DeploymentTargetTypeSchema: schemasv1.DeploymentTargetTypeSchema{
			Type: modelschemas.DeploymentTargetTypeCanary,
		},
		Bento: &schemasv1.BentoFullSchema{
			BentoWithRepositorySchema: schemasv1.BentoWithRepositorySchema{
				BentoSchema: schemasv1.BentoSchema{
					ResourceSchema: schemasv1.ResourceSchema{Name: "v1"},
				},
				Repository: &schemasv1.BentoRepositorySchema{
					ResourceSchema: schemasv1.ResourceSchema{Name: "iris_classifier"},
				},
			},
		},
		Config: conf,
	}

	dest, err := ConvertToCreateDeploymentTargetSchema(src)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(dest.Type).To(gomega.Equal(modelschemas.DeploymentTargetTypeStable))
	g.Expect(dest.BentoRepository).To(gomega.Equal("iris_classifier"))
	g.Expect(dest.Bento).To(gomega.Equal("v1"))
	g.Expect(dest.Config).To(gomega.Equal(conf))
}

func TestConvertToCreateDeploymentTargetSchemaErrors(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	_, err := ConvertToCreateDeploymentTargetSchema(nil)
	g.Expect(err).To(gomega.HaveOccurred())

	_, err = ConvertToCreateDeploymentTargetSchema(&schemasv1.DeploymentTargetSchema{})
	g.Expect(err).To(gomega.HaveOccurred())
}

func TestConvertToUpdateDeploymentSchema(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	src := &schemasv1.DeploymentSchema{
		LatestRevision: &schemasv1.DeploymentRevisionSchema{
			Targets: []*schemasv1.DeploymentTargetSchema{
				{
					Bento: &schemasv1.BentoFullSchema{
						BentoWithRepositorySchema: schemasv1.BentoWithRepositorySchema{
							BentoSchema: schemasv1.BentoSchema{
								ResourceSchema: schemasv1.ResourceSchema{Name: "v1"},
							},
							Repository: &schemasv1.BentoRepositorySchema{
								ResourceSchema: schemasv1.ResourceSchema{Name: "iris_classifier"},
							},
						},
					},
					Config: &modelschemas.DeploymentTargetConfig{},
				},
			},
		},
	}

	update, err := ConvertToUpdateDeploymentSchema(src)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(update.Targets).To(gomega.HaveLen(1))
	g.Expect(update.Targets[0].Bento).To(gomega.Equal("v1"))

	_, err = ConvertToUpdateDeploymentSchema(&schemasv1.DeploymentSchema{})
	g.Expect(err).To(gomega.HaveOccurred())
}
