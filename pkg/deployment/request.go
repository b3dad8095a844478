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
	"emperror.dev/errors"

	"github.com/bentoml/yatai-go/api/yatai/conversion"
	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
	"github.com/bentoml/yatai-go/api/yatai/schemasv1"
)

// Options carries everything the CLI collaborator gathered for a create or
// update: positional identifiers, scalar flags, the flat dotted config pairs,
// env/label tokens, and an optional whole-document file.
type Options struct {
	Name            string
	KubeNamespace   string
	Description     string
	BentoRepository string
	Bento           string
	Labels          []string // key:value tokens
	DoNotDeploy     bool
	Config          ConfigValues // dotted paths still carrying the "config." root
	Envs            []string     // KEY=VALUE tokens
	Document        []byte       // optional JSON/YAML request document
}

func (o Options) configValues() ConfigValues {
	values := o.Config.FilterPrefix("config")
	for _, env := range o.Envs {
		values = append(values, ConfigValue{Path: "env", Value: env})
	}
	return values
}

func (o Options) labelItems() (modelschemas.LabelItemsSchema, error) {
	var labels modelschemas.LabelItemsSchema
	for _, token := range o.Labels {
		item, err := ParseLabel(token)
		if err != nil {
			return nil, err
		}
		labels = append(labels, item)
	}
	return labels, nil
}

// BuildCreateDeploymentSchema assembles a create request from a document
// file, inline flags, or both. With a document, flag-supplied top-level
// fields win via the shallow document merge; without one the config is
// assembled from the dotted pairs. Having neither is a MissingConfigError.
func BuildCreateDeploymentSchema(opts Options) (*schemasv1.CreateDeploymentSchema, error) {
	if opts.Document != nil {
		return createFromDocument(opts)
	}
	values := opts.configValues()
	if len(values) == 0 {
		return nil, &MissingConfigError{}
	}

	conf, err := AssembleTargetConfig(values)
	if err != nil {
		return nil, err
	}
	labels, err := opts.labelItems()
	if err != nil {
		return nil, err
	}

	target := &schemasv1.CreateDeploymentTargetSchema{
		DeploymentTargetTypeSchema: schemasv1.DeploymentTargetTypeSchema{
			Type: modelschemas.DeploymentTargetTypeStable,
		},
		BentoRepository: opts.BentoRepository,
		Bento:           opts.Bento,
		CanaryRules:     modelschemas.DeploymentTargetCanaryRules{},
		Config:          conf,
	}
	return &schemasv1.CreateDeploymentSchema{
		Name:          opts.Name,
		KubeNamespace: opts.KubeNamespace,
		UpdateDeploymentSchema: schemasv1.UpdateDeploymentSchema{
			Targets:     []*schemasv1.CreateDeploymentTargetSchema{target},
			Labels:      labels,
			Description: optional(opts.Description),
			DoNotDeploy: opts.DoNotDeploy,
		},
	}, nil
}

func createFromDocument(opts Options) (*schemasv1.CreateDeploymentSchema, error) {
	doc, err := ParseDocument(opts.Document)
	if err != nil {
		return nil, err
	}
	override, err := opts.topLevelOverride(true)
	if err != nil {
		return nil, err
	}
	overlayTargetIdentity(doc, opts)
	return OverlayCreateDeploymentDocument(doc, override)
}

// BuildUpdateDeploymentSchema rebuilds an update request from fetched remote
// state and overlays the flag-supplied changes onto it. The returned bool is
// false when the result would resubmit the remote state unchanged.
func BuildUpdateDeploymentSchema(existing *schemasv1.DeploymentSchema, opts Options) (*schemasv1.UpdateDeploymentSchema, bool, error) {
	update, err := conversion.ConvertToUpdateDeploymentSchema(existing)
	if err != nil {
		return nil, false, errors.Wrap(err, "rebuild update request from remote state")
	}
	target := update.Targets[0]

	if opts.Document != nil {
		existingDoc, err := schemas.ToDocument(update)
		if err != nil {
			return nil, false, err
		}
		overrideDoc, err := ParseDocument(opts.Document)
		if err != nil {
			return nil, false, err
		}
		merged, err := OverlayUpdateDeploymentDocument(existingDoc, overrideDoc)
		if err != nil {
			return nil, false, err
		}
		update = merged
		target = update.Targets[0]
	}

	before, err := target.Config.Fingerprint()
	if err != nil {
		return nil, false, err
	}

	conf, err := ApplyConfigPaths(target.Config, opts.configValues())
	if err != nil {
		return nil, false, err
	}
	target.Config = conf

	after, err := conf.Fingerprint()
	if err != nil {
		return nil, false, err
	}

	changed := before != after
	if opts.Bento != "" && opts.Bento != target.Bento {
		target.Bento = opts.Bento
		changed = true
	}
	if opts.Description != "" {
		update.Description = &opts.Description
		changed = true
	}
	labels, err := opts.labelItems()
	if err != nil {
		return nil, false, err
	}
	if labels != nil {
		update.Labels = labels
		changed = true
	}
	if opts.DoNotDeploy != update.DoNotDeploy {
		update.DoNotDeploy = opts.DoNotDeploy
		changed = true
	}
	return update, changed, nil
}

// topLevelOverride collects the flag-supplied fields that shallow-merge over
// a document: name, namespace, description, labels, do-not-deploy.
func (o Options) topLevelOverride(create bool) (map[string]interface{}, error) {
	override := map[string]interface{}{}
	if create && o.Name != "" {
		override["name"] = o.Name
	}
	if create && o.KubeNamespace != "" {
		override["kube_namespace"] = o.KubeNamespace
	}
	if o.Description != "" {
		override["description"] = o.Description
	}
	if o.DoNotDeploy {
		override["do_not_deploy"] = true
	}
	if len(o.Labels) > 0 {
		labels, err := o.labelItems()
		if err != nil {
			return nil, err
		}
		items := make([]interface{}, 0, len(labels))
		for _, l := range labels {
			items = append(items, map[string]interface{}{"key": l.Key, "value": l.Value})
		}
		override["labels"] = items
	}
	return override, nil
}

// overlayTargetIdentity pushes the positional bento identifiers into the
// document's first target before the merge, the one place the collaborator
// reaches below the top level.
func overlayTargetIdentity(doc map[string]interface{}, opts Options) {
	if opts.Bento == "" && opts.BentoRepository == "" {
		return
	}
	targets, ok := doc["targets"].([]interface{})
	if !ok || len(targets) == 0 {
		return
	}
	first, ok := targets[0].(map[string]interface{})
	if !ok {
		return
	}
	if opts.Bento != "" {
		first["bento"] = opts.Bento
	}
	if opts.BentoRepository != "" {
		first["bento_repository"] = opts.BentoRepository
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
