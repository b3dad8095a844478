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
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/jinzhu/copier"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

// ApplyConfigPaths overlays flat path/value pairs onto an existing config and
// returns a new one; the input is never mutated. Merge mode is strict: a path
// segment that does not name a known field is a ConfigPathError. The batch is
// all-or-nothing — on any error the existing config stands untouched and no
// partial result is returned. Last write wins within the batch.
func ApplyConfigPaths(conf *modelschemas.DeploymentTargetConfig, values ConfigValues) (*modelschemas.DeploymentTargetConfig, error) {
	work := &modelschemas.DeploymentTargetConfig{}
	if conf != nil {
		if err := copier.CopyWithOption(work, conf, copier.Option{DeepCopy: true}); err != nil {
			return nil, errors.Wrap(err, "copy deployment target config")
		}
	}
	for _, v := range values {
		if err := applyConfigPath(work, v.Path, v.Value); err != nil {
			return nil, err
		}
	}
	return work, nil
}

func applyConfigPath(conf *modelschemas.DeploymentTargetConfig, path, value string) error {
	segments := strings.Split(path, ".")
	switch normalizeSegment(segments[0]) {
	case "resources":
		if conf.Resources == nil {
			conf.Resources = &modelschemas.DeploymentTargetResources{}
		}
		return applyResourcesPath(conf.Resources, path, segments[1:], value)
	case "hpa_conf":
		if len(segments) != 2 {
			return &ConfigPathError{Path: path, Segment: segments[0]}
		}
		if conf.HPAConf == nil {
			conf.HPAConf = &modelschemas.DeploymentTargetHPAConf{}
		}
		return applyHPAPath(conf.HPAConf, path, segments[1], value)
	case "env":
		envs, err := applyEnvPath(conf.Envs, path, segments[1:], value)
		if err != nil {
			return err
		}
		conf.Envs = envs
		return nil
	case "runners":
		if len(segments) < 3 {
			return &ConfigPathError{Path: path, Segment: segments[0]}
		}
		return applyRunnerPath(conf, path, segments[1], segments[2:], value)
	case "enable_ingress":
		if len(segments) != 1 {
			return &ConfigPathError{Path: path, Segment: segments[1]}
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return &schemas.ValidationError{Field: "enable_ingress", Reason: "not a boolean: " + value, Err: err}
		}
		conf.EnableIngress = &enabled
		return nil
	case "kube_resource_uid":
		conf.KubeResourceUid = value
		return nil
	case "kube_resource_version":
		conf.KubeResourceVersion = value
		return nil
	default:
		return &ConfigPathError{Path: path, Segment: segments[0]}
	}
}

func applyResourcesPath(resources *modelschemas.DeploymentTargetResources, path string, segments []string, value string) error {
	if len(segments) != 2 {
		return &ConfigPathError{Path: path, Segment: "resources"}
	}
	var item **modelschemas.DeploymentTargetResourceItem
	switch normalizeSegment(segments[0]) {
	case "requests":
		item = &resources.Requests
	case "limits":
		item = &resources.Limits
	default:
		return &ConfigPathError{Path: path, Segment: segments[0]}
	}
	if *item == nil {
		*item = &modelschemas.DeploymentTargetResourceItem{}
	}
	if err := setResourceField(*item, segments[1], value); err != nil {
		return &ConfigPathError{Path: path, Segment: segments[1]}
	}
	return nil
}

func applyHPAPath(conf *modelschemas.DeploymentTargetHPAConf, path, leaf, value string) error {
	err := setHPAField(conf, leaf, value)
	if err == nil {
		return nil
	}
	var verr *schemas.ValidationError
	if errors.As(err, &verr) && strings.Contains(verr.Reason, "unknown") {
		return &ConfigPathError{Path: path, Segment: leaf}
	}
	return err
}

// applyEnvPath sets env.<KEY> to value, or parses a raw KEY=VALUE token when
// the path carries no key segment. An existing key is replaced in place;
// otherwise the entry is appended.
func applyEnvPath(envs modelschemas.LabelItemsSchema, path string, segments []string, value string) (modelschemas.LabelItemsSchema, error) {
	var item modelschemas.LabelItemSchema
	switch len(segments) {
	case 0:
		parsed, err := ParseEnv(value)
		if err != nil {
			return nil, err
		}
		item = parsed
	case 1:
		item = modelschemas.LabelItemSchema{Key: segments[0], Value: value}
	default:
		return nil, &ConfigPathError{Path: path, Segment: segments[1]}
	}
	for i := range envs {
		if envs[i].Key == item.Key {
			envs[i].Value = item.Value
			return envs, nil
		}
	}
	return append(envs, item), nil
}

// applyRunnerPath resolves runners.<name>.<subpath>. Runner names are an open
// named sub-map, so an unknown name creates a new entry; the subpath below it
// is resolved strictly like the top level.
func applyRunnerPath(conf *modelschemas.DeploymentTargetConfig, path, name string, segments []string, value string) error {
	if conf.Runners == nil {
		conf.Runners = map[string]modelschemas.DeploymentTargetRunnerConfig{}
	}
	runner := conf.Runners[name]
	switch normalizeSegment(segments[0]) {
	case "resources":
		if runner.Resources == nil {
			runner.Resources = &modelschemas.DeploymentTargetResources{}
		}
		if err := applyResourcesPath(runner.Resources, path, segments[1:], value); err != nil {
			return err
		}
	case "hpa_conf":
		if len(segments) != 2 {
			return &ConfigPathError{Path: path, Segment: segments[0]}
		}
		if runner.HPAConf == nil {
			runner.HPAConf = &modelschemas.DeploymentTargetHPAConf{}
		}
		if err := applyHPAPath(runner.HPAConf, path, segments[1], value); err != nil {
			return err
		}
	case "env", "envs":
		envs, err := applyEnvPath(runner.Envs, path, segments[1:], value)
		if err != nil {
			return err
		}
		runner.Envs = envs
	default:
		return &ConfigPathError{Path: path, Segment: segments[0]}
	}
	conf.Runners[name] = runner
	return nil
}
