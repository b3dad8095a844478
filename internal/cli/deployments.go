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

package cli

import (
	"os"
	"sort"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bentoml/yatai-go/api/yatai/schemas"
	"github.com/bentoml/yatai-go/api/yatai/schemasv1"
	"github.com/bentoml/yatai-go/pkg/deployment"
)

type deploymentFlags struct {
	cluster       string
	kubeNamespace string
	output        string
	description   string
	labels        []string
	doNotDeploy   bool
	configValues  []string
	envs          []string
	configFile    string
	block         bool
	count         int
	start         int
}

func newDeploymentsCommand(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"deployment"},
		Short:   "Manage deployments",
	}
	cmd.AddCommand(
		newDeploymentsListCommand(global),
		newDeploymentsGetCommand(global),
		newDeploymentsCreateCommand(global),
		newDeploymentsUpdateCommand(global),
		newDeploymentsTerminateCommand(global),
		newDeploymentsDeleteCommand(global),
	)
	return cmd
}

func newDeploymentsListCommand(global *globalOptions) *cobra.Command {
	flags := &deploymentFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deployments in a cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var start, count *int
			if cmd.Flags().Changed("start") {
				start = &flags.start
			}
			if cmd.Flags().Changed("count") {
				count = &flags.count
			}
			deployments, err := global.client().ListDeployments(cmd.Context(), flags.cluster, start, count)
			if err != nil {
				return errors.Wrap(err, "list deployments")
			}

			items := deployments.Items
			sort.SliceStable(items, func(i, j int) bool {
				return lastTouched(items[i]).Std().After(lastTouched(items[j]).Std())
			})

			switch flags.output {
			case "json":
				return printJSON(cmd.OutOrStdout(), items)
			case "yaml":
				return printYAML(cmd.OutOrStdout(), items)
			default:
				rows := make([][]string, 0, len(items))
				for _, d := range items {
					rows = append(rows, []string{d.Name, string(d.Status), firstURL(d), d.CreatedAt.String(), updatedAt(d)})
				}
				return printTable(cmd.OutOrStdout(), []string{"NAME", "STATUS", "URL", "CREATED AT", "UPDATED AT"}, rows)
			}
		},
	}
	cmd.Flags().StringVarP(&flags.cluster, "cluster", "c", "default", "Yatai cluster")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "table", "Output format (json, yaml, table)")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 0, "Number of deployments to show")
	cmd.Flags().IntVar(&flags.start, "start", 0, "Offset to start showing deployments from")
	return cmd
}

func newDeploymentsGetCommand(global *globalOptions) *cobra.Command {
	flags := &deploymentFlags{}
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Show one deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := global.client().GetDeployment(cmd.Context(), flags.cluster, flags.kubeNamespace, args[0])
			if err != nil {
				return errors.Wrap(err, "get deployment")
			}
			if flags.output == "json" {
				return printJSON(cmd.OutOrStdout(), d)
			}
			return printYAML(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVarP(&flags.cluster, "cluster", "c", "default", "Yatai cluster")
	cmd.Flags().StringVarP(&flags.kubeNamespace, "namespace", "n", "yatai", "Kubernetes namespace")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "yaml", "Output format (json, yaml)")
	return cmd
}

func newDeploymentsCreateCommand(global *globalOptions) *cobra.Command {
	flags := &deploymentFlags{}
	cmd := &cobra.Command{
		Use:   "create NAME BENTO_REPOSITORY BENTO",
		Short: "Create a deployment",
		Long: `Create a new deployment from inline config flags or a config file.

  yatai deployments create iris_classifier_a iris_classifier qojf5xauugwqtgxi \
    --config resources.requests.cpu=1000m \
    --config resources.limits.cpu=1500m \
    --config hpa_conf.min_replicas=1 \
    --config hpa_conf.max_replicas=10 \
    --config runners.iris_runner_a.resources.requests.memory=512Mi \
    --env LOG_LEVEL=DEBUG \
    --config enable_ingress=1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(flags)
			if err != nil {
				return err
			}
			opts.Name = args[0]
			opts.BentoRepository = args[1]
			opts.Bento = args[2]

			req, err := deployment.BuildCreateDeploymentSchema(opts)
			if err != nil {
				return err
			}
			d, err := global.client().CreateDeployment(cmd.Context(), flags.cluster, req)
			if err != nil {
				return errors.Wrap(err, "create deployment")
			}
			logrus.Infof("deployment %q created with status %s", d.Name, d.Status)
			return nil
		},
	}
	addWriteFlags(cmd, flags)
	return cmd
}

func newDeploymentsUpdateCommand(global *globalOptions) *cobra.Command {
	flags := &deploymentFlags{}
	cmd := &cobra.Command{
		Use:   "update NAME [BENTO]",
		Short: "Update a deployment, overlaying changes onto its current state",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(flags)
			if err != nil {
				return err
			}
			if len(args) > 1 {
				opts.Bento = args[1]
			}

			client := global.client()
			existing, err := client.GetDeployment(cmd.Context(), flags.cluster, flags.kubeNamespace, args[0])
			if err != nil {
				return errors.Wrap(err, "get deployment")
			}
			req, changed, err := deployment.BuildUpdateDeploymentSchema(existing, opts)
			if err != nil {
				return err
			}
			if !changed {
				logrus.Infof("deployment %q already matches the requested state", args[0])
				return nil
			}
			d, err := client.UpdateDeployment(cmd.Context(), flags.cluster, flags.kubeNamespace, args[0], req)
			if err != nil {
				return errors.Wrap(err, "update deployment")
			}
			logrus.Infof("deployment %q updated with status %s", d.Name, d.Status)
			return nil
		},
	}
	addWriteFlags(cmd, flags)
	return cmd
}

func newDeploymentsTerminateCommand(global *globalOptions) *cobra.Command {
	flags := &deploymentFlags{}
	cmd := &cobra.Command{
		Use:   "terminate NAME",
		Short: "Terminate a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := global.client()
			if _, err := client.TerminateDeployment(cmd.Context(), flags.cluster, flags.kubeNamespace, args[0]); err != nil {
				return errors.Wrap(err, "terminate deployment")
			}
			if !flags.block {
				return nil
			}
			if err := client.WaitDeploymentTerminated(cmd.Context(), flags.cluster, flags.kubeNamespace, args[0]); err != nil {
				return err
			}
			logrus.Infof("deployment %q terminated", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.cluster, "cluster", "c", "default", "Yatai cluster")
	cmd.Flags().StringVarP(&flags.kubeNamespace, "namespace", "n", "yatai", "Kubernetes namespace")
	cmd.Flags().BoolVarP(&flags.block, "block", "b", false, "Wait until the deployment is terminated")
	return cmd
}

func newDeploymentsDeleteCommand(global *globalOptions) *cobra.Command {
	flags := &deploymentFlags{}
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a terminated deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := global.client().DeleteDeployment(cmd.Context(), flags.cluster, flags.kubeNamespace, args[0]); err != nil {
				return errors.Wrap(err, "delete deployment")
			}
			logrus.Infof("deployment %q deleted", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.cluster, "cluster", "c", "default", "Yatai cluster")
	cmd.Flags().StringVarP(&flags.kubeNamespace, "namespace", "n", "yatai", "Kubernetes namespace")
	return cmd
}

func addWriteFlags(cmd *cobra.Command, flags *deploymentFlags) {
	cmd.Flags().StringVarP(&flags.cluster, "cluster", "c", "default", "Yatai cluster")
	cmd.Flags().StringVarP(&flags.kubeNamespace, "namespace", "n", "yatai", "Kubernetes namespace")
	cmd.Flags().StringVar(&flags.description, "description", "", "Deployment description")
	cmd.Flags().StringArrayVarP(&flags.labels, "label", "l", nil, "Deployment label like 'group:A'")
	cmd.Flags().BoolVar(&flags.doNotDeploy, "do-not-deploy", false, "Register the revision without deploying it")
	cmd.Flags().StringArrayVar(&flags.configValues, "config", nil, "Config override like 'hpa_conf.min_replicas=1'")
	cmd.Flags().StringArrayVar(&flags.envs, "env", nil, "Environment variable like 'KEY=VALUE'")
	cmd.Flags().StringVarP(&flags.configFile, "file", "f", "", "JSON or YAML deployment request document")
}

// buildOptions translates flag values into core options. The --config flags
// are relative to the config root, so the root segment is restored here.
func buildOptions(flags *deploymentFlags) (deployment.Options, error) {
	opts := deployment.Options{
		KubeNamespace: flags.kubeNamespace,
		Description:   flags.description,
		Labels:        flags.labels,
		DoNotDeploy:   flags.doNotDeploy,
		Envs:          flags.envs,
	}
	for _, token := range flags.configValues {
		value, err := deployment.ParseConfigValue(token)
		if err != nil {
			return deployment.Options{}, err
		}
		value.Path = "config." + value.Path
		opts.Config = append(opts.Config, value)
	}
	if flags.configFile != "" {
		data, err := os.ReadFile(flags.configFile)
		if err != nil {
			return deployment.Options{}, errors.Wrap(err, "read config file")
		}
		opts.Document = data
	}
	return opts, nil
}

func lastTouched(d *schemasv1.DeploymentSchema) schemas.Time {
	if d.UpdatedAt != nil {
		return *d.UpdatedAt
	}
	return d.CreatedAt
}

func firstURL(d *schemasv1.DeploymentSchema) string {
	if len(d.URLs) == 0 {
		return ""
	}
	return d.URLs[0]
}

func updatedAt(d *schemasv1.DeploymentSchema) string {
	if d.UpdatedAt == nil {
		return ""
	}
	return d.UpdatedAt.String()
}
