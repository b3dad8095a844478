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
	"time"

	"emperror.dev/errors"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
)

// Terminate polling contract: fixed interval, bounded attempts. Changing
// either changes observable CLI timing.
const (
	terminateWaitInterval    = 330 * time.Millisecond
	terminateWaitMaxAttempts = 30
)

// WaitDeploymentTerminated polls the deployment until its status reaches
// non-deployed, giving up once the attempts run out.
func (c *YataiClient) WaitDeploymentTerminated(ctx context.Context, clusterName, kubeNamespace, deploymentName string) error {
	for attempt := 0; attempt <= terminateWaitMaxAttempts; attempt++ {
		deployment, err := c.GetDeployment(ctx, clusterName, kubeNamespace, deploymentName)
		if err != nil {
			return errors.Wrap(err, "get deployment")
		}
		if deployment.Status == modelschemas.DeploymentStatusNonDeployed {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(terminateWaitInterval):
		}
	}
	return errors.Errorf("timed out waiting for deployment %q to terminate", deploymentName)
}
