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

type ModelUploadStatus string

const (
	ModelUploadStatusPending   ModelUploadStatus = "pending"
	ModelUploadStatusUploading ModelUploadStatus = "uploading"
	ModelUploadStatusSuccess   ModelUploadStatus = "success"
	ModelUploadStatusFailed    ModelUploadStatus = "failed"
)

func (s ModelUploadStatus) Ptr() *ModelUploadStatus {
	return &s
}

func (s *ModelUploadStatus) UnmarshalJSON(b []byte) error {
	return schemas.UnmarshalEnum(b, "upload_status", s,
		ModelUploadStatusPending,
		ModelUploadStatusUploading,
		ModelUploadStatusSuccess,
		ModelUploadStatusFailed,
	)
}

type ModelManifestSchema struct {
	Module         string                 `json:"module"`
	ApiVersion     string                 `json:"api_version"`
	BentomlVersion string                 `json:"bentoml_version"`
	SizeBytes      uint                   `json:"size_bytes"`
	Metadata       map[string]interface{} `json:"metadata"`
	Context        map[string]interface{} `json:"context"`
	Options        map[string]interface{} `json:"options"`
}
