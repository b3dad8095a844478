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
	"testing"

	"github.com/onsi/gomega"

	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

func TestAssembleTargetConfig(t *testing.T) {
	values := ConfigValues{
		{Path: "resources.requests.cpu", Value: "1000m"},
		{Path: "resources.limits.cpu", Value: "1500m"},
		{Path: "hpa_conf.min_replicas", Value: "1"},
		{Path: "hpa_conf.max_replicas", Value: "10"},
		{Path: "enable_ingress", Value: "1"},
	}

	g := gomega.NewGomegaWithT(t)
	conf, err := AssembleTargetConfig(values)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(conf.KubeResourceUid).To(gomega.Equal(""))
	g.Expect(conf.KubeResourceVersion).To(gomega.Equal(""))
	g.Expect(conf.Resources).NotTo(gomega.BeNil())
	g.Expect(conf.Resources.Requests.CPU).To(gomega.Equal("1000m"))
	g.Expect(conf.Resources.Limits.CPU).To(gomega.Equal("1500m"))
	g.Expect(conf.Resources.Requests.Memory).To(gomega.BeEmpty())
	g.Expect(conf.HPAConf.MinReplicas).To(gomega.HaveValue(gomega.Equal(int32(1))))
	g.Expect(conf.HPAConf.MaxReplicas).To(gomega.HaveValue(gomega.Equal(int32(10))))
	g.Expect(conf.HPAConf.QPS).To(gomega.BeNil())
	g.Expect(conf.EnableIngress).To(gomega.HaveValue(gomega.BeTrue()))
	g.Expect(conf.Envs).To(gomega.BeNil())
	g.Expect(conf.Runners).To(gomega.BeNil())
}

func TestAssembleTargetConfigRunnerGrouping(t *testing.T) {
	values := ConfigValues{
		{Path: "runners.a.resources.requests.cpu", Value: "1"},
		{Path: "runners.b.hpa_conf.qps", Value: "10"},
	}

	g := gomega.NewGomegaWithT(t)
	conf, err := AssembleTargetConfig(values)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(conf.Runners).To(gomega.HaveLen(2))
	g.Expect(conf.Runners).To(gomega.HaveKey("a"))
	g.Expect(conf.Runners).To(gomega.HaveKey("b"))

	a := conf.Runners["a"]
	g.Expect(a.Resources.Requests.CPU).To(gomega.Equal("1"))
	g.Expect(a.HPAConf).To(gomega.BeNil())

	b := conf.Runners["b"]
	g.Expect(b.Resources).To(gomega.BeNil())
	g.Expect(b.HPAConf.QPS).To(gomega.HaveValue(gomega.Equal(int64(10))))
}

func TestAssembleTargetConfigEnvs(t *testing.T) {
	values := ConfigValues{
		{Path: "env", Value: "DEVELOPMENT=1"},
		{Path: "env.LOG_LEVEL", Value: "DEBUG"},
		{Path: "env", Value: "FOO=bar=baz"},
		{Path: "env.LOG_LEVEL", Value: "INFO"},
	}

	g := gomega.NewGomegaWithT(t)
	conf, err := AssembleTargetConfig(values)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// Duplicate keys survive as separate ordered entries.
	g.Expect(conf.Envs).To(gomega.Equal(modelschemas.LabelItemsSchema{
		{Key: "DEVELOPMENT", Value: "1"},
		{Key: "LOG_LEVEL", Value: "DEBUG"},
		{Key: "FOO", Value: "bar=baz"},
		{Key: "LOG_LEVEL", Value: "INFO"},
	}))
}

func TestAssembleTargetConfigUnknownPaths(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	// Unrouted top-level segments are dropped in fresh-build mode.
	conf, err := AssembleTargetConfig(ConfigValues{
		{Path: "no_such_section.foo", Value: "1"},
		{Path: "resources.requests.cpu", Value: "500m"},
	})
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(conf.Resources.Requests.CPU).To(gomega.Equal("500m"))

	// An unknown key inside a recognized leaf record fails.
	_, err = AssembleTargetConfig(ConfigValues{
		{Path: "resources.requests.cpus", Value: "500m"},
	})
	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(err).To(gomega.BeAssignableToTypeOf(&schemas.ValidationError{}))
}

// flattenDocument inverts assembly for comparison: it walks a wire document
// back down to dotted path/value pairs, rendering scalars the way the flag
// layer supplies them. Label sequences flatten under the singular segment
// ("envs" back to "env.<KEY>"); empty strings and nulls are absent leaves.
func flattenDocument(prefix string, v interface{}, out map[string]string) {
	switch val := v.(type) {
	case map[string]interface{}:
		for key, child := range val {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flattenDocument(path, child, out)
		}
	case []interface{}:
		for _, child := range val {
			entry := child.(map[string]interface{})
			out[strings.TrimSuffix(prefix, "s")+"."+entry["key"].(string)] = entry["value"].(string)
		}
	case string:
		if val != "" {
			out[prefix] = val
		}
	case bool:
		out[prefix] = strconv.FormatBool(val)
	case float64:
		out[prefix] = strconv.FormatFloat(val, 'f', -1, 64)
	}
}

func TestAssembleTargetConfigCompleteness(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	pairs := map[string]string{
		"resources.requests.cpu":                  "1000m",
		"resources.limits.memory":                 "1Gi",
		"hpa_conf.min_replicas":                   "1",
		"hpa_conf.qps":                            "50",
		"env.LOG_LEVEL":                           "DEBUG",
		"runners.worker_a.resources.requests.cpu": "2",
		"runners.worker_a.hpa_conf.max_replicas":  "4",
		"enable_ingress":                          "true",
	}
	values := make(ConfigValues, 0, len(pairs))
	for path, value := range pairs {
		values = append(values, ConfigValue{Path: path, Value: value})
	}

	conf, err := AssembleTargetConfig(values)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	doc, err := schemas.ToDocument(conf)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	got := map[string]string{}
	flattenDocument("", doc, got)
	g.Expect(got).To(gomega.Equal(pairs))
}

func TestAssembleTargetConfigCoercion(t *testing.T) {
	tests := []struct {
		name    string
		values  ConfigValues
		wantErr bool
		check   func(g *gomega.WithT, conf *modelschemas.DeploymentTargetConfig)
	}{
		{
			name: "hpa memory stays a string",
			values: ConfigValues{
				{Path: "hpa_conf.memory", Value: "512Mi"},
			},
			check: func(g *gomega.WithT, conf *modelschemas.DeploymentTargetConfig) {
				g.Expect(conf.HPAConf.Memory).To(gomega.HaveValue(gomega.Equal("512Mi")))
			},
		},
		{
			name: "qps coerces to int64",
			values: ConfigValues{
				{Path: "hpa_conf.qps", Value: "100"},
			},
			check: func(g *gomega.WithT, conf *modelschemas.DeploymentTargetConfig) {
				g.Expect(conf.HPAConf.QPS).To(gomega.HaveValue(gomega.Equal(int64(100))))
			},
		},
		{
			name: "non-integer replica count fails",
			values: ConfigValues{
				{Path: "hpa_conf.min_replicas", Value: "two"},
			},
			wantErr: true,
		},
		{
			name: "non-boolean ingress flag fails",
			values: ConfigValues{
				{Path: "enable_ingress", Value: "yes please"},
			},
			wantErr: true,
		},
		{
			name: "camelCase segment resolves like snake_case",
			values: ConfigValues{
				{Path: "hpa_conf.minReplicas", Value: "3"},
			},
			check: func(g *gomega.WithT, conf *modelschemas.DeploymentTargetConfig) {
				g.Expect(conf.HPAConf.MinReplicas).To(gomega.HaveValue(gomega.Equal(int32(3))))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewGomegaWithT(t)
			conf, err := AssembleTargetConfig(tt.values)
			if tt.wantErr {
				g.Expect(err).To(gomega.HaveOccurred())
				g.Expect(conf).To(gomega.BeNil())
				return
			}
			g.Expect(err).NotTo(gomega.HaveOccurred())
			tt.check(g, conf)
		})
	}
}
