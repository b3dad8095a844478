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

// Package cli wires the command tree. It owns user-facing concerns the data
// layer never touches: flag parsing, output rendering, process exit codes.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bentoml/yatai-go/api/yatai/yataiclient"
)

type globalOptions struct {
	endpoint string
	apiToken string
}

func (g *globalOptions) client() *yataiclient.YataiClient {
	return yataiclient.NewYataiClient(g.endpoint, g.apiToken)
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "yatai",
		Short:         "Manage deployments on a Yatai control plane",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", os.Getenv("YATAI_ENDPOINT"), "Yatai API endpoint")
	cmd.PersistentFlags().StringVar(&opts.apiToken, "api-token", os.Getenv("YATAI_API_TOKEN"), "Yatai API token")

	cmd.AddCommand(newDeploymentsCommand(opts))
	return cmd
}
