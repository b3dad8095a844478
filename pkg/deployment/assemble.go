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

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

// AssembleTargetConfig builds a DeploymentTargetConfig from flat dotted
// path/value pairs already relative to the config root (the leading "config"
// segment stripped). Fresh-build mode: paths that do not route to a known
// top-level slot are dropped, but an unknown key inside a recognized leaf
// record fails.
func AssembleTargetConfig(values ConfigValues) (*modelschemas.DeploymentTargetConfig, error) {
	resources, err := assembleResources(values)
	if err != nil {
		return nil, err
	}
	hpaConf, err := assembleHPAConf(values.FilterPrefix("hpa_conf"))
	if err != nil {
		return nil, err
	}
	envs, err := assembleEnvs(values.FilterPrefix("env"))
	if err != nil {
		return nil, err
	}
	runners, err := assembleRunners(values.FilterPrefix("runners"))
	if err != nil {
		return nil, err
	}

	conf := &modelschemas.DeploymentTargetConfig{
		KubeResourceUid:     "",
		KubeResourceVersion: "",
		Resources:           resources,
		HPAConf:             hpaConf,
		Envs:                envs,
		Runners:             runners,
	}
	for _, v := range values {
		if normalizeSegment(v.Path) == "enable_ingress" {
			enabled, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil, &schemas.ValidationError{Field: "enable_ingress", Reason: "not a boolean: " + v.Value, Err: err}
			}
			conf.EnableIngress = &enabled
		}
	}
	return conf, nil
}

func assembleResources(values ConfigValues) (*modelschemas.DeploymentTargetResources, error) {
	requests, err := assembleResourceItem(values.FilterPrefix("resources.requests"))
	if err != nil {
		return nil, err
	}
	limits, err := assembleResourceItem(values.FilterPrefix("resources.limits"))
	if err != nil {
		return nil, err
	}
	if requests == nil && limits == nil {
		return nil, nil
	}
	return &modelschemas.DeploymentTargetResources{Requests: requests, Limits: limits}, nil
}

func assembleResourceItem(values ConfigValues) (*modelschemas.DeploymentTargetResourceItem, error) {
	if len(values) == 0 {
		return nil, nil
	}
	item := &modelschemas.DeploymentTargetResourceItem{}
	for _, v := range values {
		if err := setResourceField(item, v.Path, v.Value); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func assembleHPAConf(values ConfigValues) (*modelschemas.DeploymentTargetHPAConf, error) {
	if len(values) == 0 {
		return nil, nil
	}
	conf := &modelschemas.DeploymentTargetHPAConf{}
	for _, v := range values {
		if err := setHPAField(conf, v.Path, v.Value); err != nil {
			return nil, err
		}
	}
	return conf, nil
}

// assembleEnvs turns env pairs into ordered labels. A pair may arrive either
// as path "LOG_LEVEL" value "DEBUG", or as an empty path with a raw
// "KEY=VALUE" token as its value. Duplicate keys are kept as separate
// entries.
func assembleEnvs(values ConfigValues) (modelschemas.LabelItemsSchema, error) {
	var envs modelschemas.LabelItemsSchema
	for _, v := range values {
		if v.Path == "" {
			item, err := ParseEnv(v.Value)
			if err != nil {
				return nil, err
			}
			envs = append(envs, item)
			continue
		}
		envs = append(envs, modelschemas.LabelItemSchema{Key: v.Path, Value: v.Value})
	}
	return envs, nil
}

// assembleRunners groups the distinct runner names under "runners" and builds
// one RunnerConfig per name by re-applying the leaf assembly with root
// "runners.<name>". First-appearance order of names drives the grouping;
// encoded output is key-sorted either way.
func assembleRunners(values ConfigValues) (map[string]modelschemas.DeploymentTargetRunnerConfig, error) {
	var names []string
	seen := map[string]bool{}
	for _, v := range values {
		name, _, _ := strings.Cut(v.Path, ".")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, nil
	}

	runners := make(map[string]modelschemas.DeploymentTargetRunnerConfig, len(names))
	for _, name := range names {
		sub := values.FilterPrefix(name)
		resources, err := assembleResources(sub)
		if err != nil {
			return nil, err
		}
		hpaConf, err := assembleHPAConf(sub.FilterPrefix("hpa_conf"))
		if err != nil {
			return nil, err
		}
		envs, err := assembleEnvs(sub.FilterPrefix("env"))
		if err != nil {
			return nil, err
		}
		runners[name] = modelschemas.DeploymentTargetRunnerConfig{
			Resources: resources,
			HPAConf:   hpaConf,
			Envs:      envs,
		}
	}
	return runners, nil
}

func setResourceField(item *modelschemas.DeploymentTargetResourceItem, key, value string) error {
	switch normalizeSegment(key) {
	case "cpu":
		item.CPU = value
	case "memory":
		item.Memory = value
	case "gpu":
		item.GPU = value
	default:
		return &schemas.ValidationError{Field: key, Reason: "unknown resource field"}
	}
	return nil
}

// setHPAField coerces the raw flag string once, here, per leaf type: counts
// and replica bounds to integers, the memory threshold stays a string.
func setHPAField(conf *modelschemas.DeploymentTargetHPAConf, key, value string) error {
	key = normalizeSegment(key)
	switch key {
	case "memory":
		conf.Memory = &value
		return nil
	case "qps":
		qps, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return &schemas.ValidationError{Field: "hpa_conf." + key, Reason: "not an integer: " + value, Err: err}
		}
		conf.QPS = &qps
		return nil
	case "cpu", "gpu", "min_replicas", "max_replicas":
		parsed, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return &schemas.ValidationError{Field: "hpa_conf." + key, Reason: "not an integer: " + value, Err: err}
		}
		v := int32(parsed)
		switch key {
		case "cpu":
			conf.CPU = &v
		case "gpu":
			conf.GPU = &v
		case "min_replicas":
			conf.MinReplicas = &v
		case "max_replicas":
			conf.MaxReplicas = &v
		}
		return nil
	default:
		return &schemas.ValidationError{Field: "hpa_conf." + key, Reason: "unknown autoscaling field"}
	}
}
