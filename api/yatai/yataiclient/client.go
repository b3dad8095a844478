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

// Package yataiclient talks to the Yatai REST API. Every response document is
// decoded through the schema converter, so a malformed or partial payload
// surfaces as a ValidationError rather than a half-filled value.
package yataiclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bentoml/yatai-go/api/yatai/schemas"
	"github.com/bentoml/yatai-go/api/yatai/schemasv1"
)

const YataiApiTokenHeaderName = "X-YATAI-API-TOKEN"

type YataiClient struct {
	endpoint string
	apiToken string
}

func NewYataiClient(endpoint, apiToken string) *YataiClient {
	return &YataiClient{
		endpoint: endpoint,
		apiToken: apiToken,
	}
}

func (c *YataiClient) getHeaders() map[string]string {
	return map[string]string{
		YataiApiTokenHeaderName: c.apiToken,
	}
}

func getJson[T any](ctx context.Context, c *YataiClient, path string, query map[string]string) (*T, error) {
	body, _, err := DoJsonRequest(ctx, "GET", urlJoin(c.endpoint, path), c.getHeaders(), query, nil)
	if err != nil {
		return nil, err
	}
	return schemas.FromJSON[T](body)
}

func sendJson[T any](ctx context.Context, c *YataiClient, method, path string, payload interface{}) (*T, error) {
	body, _, err := DoJsonRequest(ctx, method, urlJoin(c.endpoint, path), c.getHeaders(), nil, payload)
	if err != nil {
		return nil, err
	}
	return schemas.FromJSON[T](body)
}

func (c *YataiClient) GetCurrentUser(ctx context.Context) (*schemasv1.UserSchema, error) {
	return getJson[schemasv1.UserSchema](ctx, c, "/api/v1/auth/current", nil)
}

func (c *YataiClient) GetCurrentOrganization(ctx context.Context) (*schemasv1.OrganizationSchema, error) {
	return getJson[schemasv1.OrganizationSchema](ctx, c, "/api/v1/current_org", nil)
}

func (c *YataiClient) GetCluster(ctx context.Context, clusterName string) (*schemasv1.ClusterFullSchema, error) {
	return getJson[schemasv1.ClusterFullSchema](ctx, c, fmt.Sprintf("/api/v1/clusters/%s", clusterName), nil)
}

func (c *YataiClient) GetBentoRepository(ctx context.Context, bentoRepositoryName string) (*schemasv1.BentoRepositorySchema, error) {
	return getJson[schemasv1.BentoRepositorySchema](ctx, c, fmt.Sprintf("/api/v1/bento_repositories/%s", bentoRepositoryName), nil)
}

func (c *YataiClient) GetBento(ctx context.Context, bentoRepositoryName, bentoVersion string) (*schemasv1.BentoFullSchema, error) {
	return getJson[schemasv1.BentoFullSchema](ctx, c, fmt.Sprintf("/api/v1/bento_repositories/%s/bentos/%s", bentoRepositoryName, bentoVersion), nil)
}

func (c *YataiClient) GetModelRepository(ctx context.Context, modelRepositoryName string) (*schemasv1.ModelRepositorySchema, error) {
	return getJson[schemasv1.ModelRepositorySchema](ctx, c, fmt.Sprintf("/api/v1/model_repositories/%s", modelRepositoryName), nil)
}

func (c *YataiClient) GetModel(ctx context.Context, modelRepositoryName, modelVersion string) (*schemasv1.ModelSchema, error) {
	return getJson[schemasv1.ModelSchema](ctx, c, fmt.Sprintf("/api/v1/model_repositories/%s/models/%s", modelRepositoryName, modelVersion), nil)
}

func (c *YataiClient) ListDeployments(ctx context.Context, clusterName string, start, count *int) (*schemasv1.DeploymentListSchema, error) {
	query := map[string]string{}
	if start != nil {
		query["start"] = strconv.Itoa(*start)
	}
	if count != nil {
		query["count"] = strconv.Itoa(*count)
	}
	return getJson[schemasv1.DeploymentListSchema](ctx, c, fmt.Sprintf("/api/v1/clusters/%s/deployments", clusterName), query)
}

func (c *YataiClient) GetDeployment(ctx context.Context, clusterName, kubeNamespace, deploymentName string) (*schemasv1.DeploymentSchema, error) {
	return getJson[schemasv1.DeploymentSchema](ctx, c, fmt.Sprintf("/api/v1/clusters/%s/namespaces/%s/deployments/%s", clusterName, kubeNamespace, deploymentName), nil)
}

func (c *YataiClient) CreateDeployment(ctx context.Context, clusterName string, req *schemasv1.CreateDeploymentSchema) (*schemasv1.DeploymentSchema, error) {
	return sendJson[schemasv1.DeploymentSchema](ctx, c, "POST", fmt.Sprintf("/api/v1/clusters/%s/deployments", clusterName), req)
}

func (c *YataiClient) UpdateDeployment(ctx context.Context, clusterName, kubeNamespace, deploymentName string, req *schemasv1.UpdateDeploymentSchema) (*schemasv1.DeploymentSchema, error) {
	return sendJson[schemasv1.DeploymentSchema](ctx, c, "PATCH", fmt.Sprintf("/api/v1/clusters/%s/namespaces/%s/deployments/%s", clusterName, kubeNamespace, deploymentName), req)
}

func (c *YataiClient) TerminateDeployment(ctx context.Context, clusterName, kubeNamespace, deploymentName string) (*schemasv1.DeploymentSchema, error) {
	return sendJson[schemasv1.DeploymentSchema](ctx, c, "POST", fmt.Sprintf("/api/v1/clusters/%s/namespaces/%s/deployments/%s/terminate", clusterName, kubeNamespace, deploymentName), nil)
}

func (c *YataiClient) DeleteDeployment(ctx context.Context, clusterName, kubeNamespace, deploymentName string) (*schemasv1.DeploymentSchema, error) {
	return sendJson[schemasv1.DeploymentSchema](ctx, c, "DELETE", fmt.Sprintf("/api/v1/clusters/%s/namespaces/%s/deployments/%s", clusterName, kubeNamespace, deploymentName), nil)
}

func urlJoin(baseURL string, pathPart string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(pathPart, "/")
}
