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

package deployment

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestMergeDocuments(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	existing := map[string]interface{}{
		"description": "A",
		"bento":       "v1",
	}
	override := map[string]interface{}{
		"bento": "v2",
	}

	got := MergeDocuments(existing, override)
	g.Expect(got).To(gomega.Equal(map[string]interface{}{
		"description": "A",
		"bento":       "v2",
	}))
	g.Expect(existing["bento"]).To(gomega.Equal("v1"))
}

func TestMergeDocumentsIsShallow(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	existing := map[string]interface{}{
		"targets": []interface{}{
			map[string]interface{}{"bento": "v1", "bento_repository": "iris"},
		},
	}
	override := map[string]interface{}{
		"targets": []interface{}{
			map[string]interface{}{"bento": "v2"},
		},
	}

	got := MergeDocuments(existing, override)
	// Whole-key replacement: the old target's repository does not leak into
	// the overriding value.
	g.Expect(got["targets"]).To(gomega.Equal([]interface{}{
		map[string]interface{}{"bento": "v2"},
	}))
}

func TestParseDocument(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	doc, err := ParseDocument([]byte("name: iris\nkube_namespace: yatai\n"))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(doc).To(gomega.Equal(map[string]interface{}{
		"name":           "iris",
		"kube_namespace": "yatai",
	}))

	doc, err = ParseDocument([]byte(`{"name": "iris"}`))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(doc).To(gomega.HaveKeyWithValue("name", "iris"))

	_, err = ParseDocument([]byte(`- not
- an
- object`))
	g.Expect(err).To(gomega.HaveOccurred())
}
