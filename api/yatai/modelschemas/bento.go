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

package modelschemas

import "github.com/bentoml/yatai-go/api/yatai/schemas"

type ImageBuildStatus string

const (
	ImageBuildStatusPending  ImageBuildStatus = "pending"
	ImageBuildStatusBuilding ImageBuildStatus = "building"
	ImageBuildStatusSuccess  ImageBuildStatus = "success"
	ImageBuildStatusFailed   ImageBuildStatus = "failed"
)

func (s *ImageBuildStatus) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "image_build_status", s,
		ImageBuildStatusPending,
		ImageBuildStatusBuilding,
		ImageBuildStatusSuccess,
		ImageBuildStatusFailed,
	)
}

type BentoUploadStatus string

const (
	BentoUploadStatusPending   BentoUploadStatus = "pending"
	BentoUploadStatusUploading BentoUploadStatus = "uploading"
	BentoUploadStatusSuccess   BentoUploadStatus = "success"
	BentoUploadStatusFailed    BentoUploadStatus = "failed"
)

func (s BentoUploadStatus) Ptr() *BentoUploadStatus {
	return &s
}

func (s *BentoUploadStatus) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "upload_status", s,
		BentoUploadStatusPending,
		BentoUploadStatusUploading,
		BentoUploadStatusSuccess,
		BentoUploadStatusFailed,
	)
}

type BentoApiSchema struct {
	Route  string `json:"route"`
	Doc    string `json:"doc"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

type BentoRunnerResourceSchema struct {
	CPU             interface{} `json:"cpu,omitempty"`
	NvidiaGPU       interface{} `json:"nvidia_gpu,omitempty"`
	CustomResources interface{} `json:"custom_resources,omitempty"`
}

type BentoRunnerSchema struct {
	Name           string                     `json:"name"`
	RunnableType   *string                    `json:"runnable_type,omitempty"`
	Models         []string                   `json:"models,omitempty"`
	ResourceConfig *BentoRunnerResourceSchema `json:"resource_config,omitempty"`
}

type BentoManifestSchema struct {
	Service        string                    `json:"service"`
	BentomlVersion string                    `json:"bentoml_version"`
	SizeBytes      uint                      `json:"size_bytes"`
	Apis           map[string]BentoApiSchema `json:"apis"`
	Models         []string                  `json:"models"`
	Runners        []BentoRunnerSchema       `json:"runners,omitempty"`
}
