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

package yataiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"emperror.dev/errors"
	"github.com/onsi/gomega"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

func deploymentJSON(status modelschemas.DeploymentStatus) string {
	return fmt.Sprintf(`{
		"uid": "dep-01",
		"created_at": "2024-03-15 09:30:00.000000",
		"name": "iris",
		"resource_type": "deployment",
		"status": %q,
		"kube_namespace": "yatai"
	}`, status)
}

func TestGetDeployment(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	var gotPath, gotToken, gotRequestId string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get(YataiApiTokenHeaderName)
		gotRequestId = r.Header.Get(requestIdHeaderName)
		fmt.Fprint(w, deploymentJSON(modelschemas.DeploymentStatusRunning))
	}))
	defer server.Close()

	client := NewYataiClient(server.URL, "token-123")
	deployment, err := client.GetDeployment(context.Background(), "default", "yatai", "iris")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(deployment.Name).To(gomega.Equal("iris"))
	g.Expect(deployment.Status).To(gomega.Equal(modelschemas.DeploymentStatusRunning))
	g.Expect(gotPath).To(gomega.Equal("/api/v1/clusters/default/namespaces/yatai/deployments/iris"))
	g.Expect(gotToken).To(gomega.Equal("token-123"))
	g.Expect(gotRequestId).NotTo(gomega.BeEmpty())
}

func TestGetDeploymentMalformedResponse(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Missing uid and created_at.
		fmt.Fprint(w, `{"name": "iris", "resource_type": "deployment", "status": "running"}`)
	}))
	defer server.Close()

	client := NewYataiClient(server.URL, "token-123")
	deployment, err := client.GetDeployment(context.Background(), "default", "yatai", "iris")
	g.Expect(deployment).To(gomega.BeNil())
	var verr *schemas.ValidationError
	g.Expect(errors.As(err, &verr)).To(gomega.BeTrue())
}

func TestGetDeploymentHTTPError(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "deployment not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewYataiClient(server.URL, "token-123")
	_, err := client.GetDeployment(context.Background(), "default", "yatai", "iris")
	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(err.Error()).To(gomega.ContainSubstring("404"))
}

func TestWaitDeploymentTerminated(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		status := modelschemas.DeploymentStatusRunning
		if polls >= 3 {
			status = modelschemas.DeploymentStatusNonDeployed
		}
		fmt.Fprint(w, deploymentJSON(status))
	}))
	defer server.Close()

	client := NewYataiClient(server.URL, "token-123")
	err := client.WaitDeploymentTerminated(context.Background(), "default", "yatai", "iris")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(polls).To(gomega.Equal(3))
}

func TestWaitDeploymentTerminatedCanceled(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, deploymentJSON(modelschemas.DeploymentStatusRunning))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewYataiClient(server.URL, "token-123")
	err := client.WaitDeploymentTerminated(ctx, "default", "yatai", "iris")
	g.Expect(err).To(gomega.HaveOccurred())
}
