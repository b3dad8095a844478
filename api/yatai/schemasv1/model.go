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

package schemasv1

import (
	"github.com/bentoml/yatai-go/api/yatai/modelschemas"
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

type ModelSchema struct {
	ResourceSchema
	Creator              *UserSchema                        `json:"creator,omitempty"`
	Version              string                             `json:"version"`
	Description          string                             `json:"description"`
	ImageBuildStatus     modelschemas.ImageBuildStatus      `json:"image_build_status" enum:"pending,building,success,failed"`
	UploadStatus         modelschemas.ModelUploadStatus     `json:"upload_status" enum:"pending,uploading,success,failed"`
	UploadStartedAt      *schemas.Time                      `json:"upload_started_at,omitempty"`
	UploadFinishedAt     *schemas.Time                      `json:"upload_finished_at,omitempty"`
	UploadFinishedReason string                             `json:"upload_finished_reason"`
	PresignedUploadUrl   string                             `json:"presigned_upload_url"`
	PresignedDownloadUrl string                             `json:"presigned_download_url"`
	TransmissionStrategy *modelschemas.TransmissionStrategy `json:"transmission_strategy,omitempty"`
	UploadId             *string                            `json:"upload_id,omitempty"`
	Manifest             *modelschemas.ModelManifestSchema  `json:"manifest"`
	BuildAt              schemas.Time                       `json:"build_at"`
}

type ModelListSchema struct {
	BaseListSchema
	Items []*ModelSchema `json:"items"`
}

type ModelWithRepositorySchema struct {
	ModelSchema
	Repository *ModelRepositorySchema `json:"repository,omitempty"`
}

type ModelWithRepositoryListSchema struct {
	BaseListSchema
	Items []*ModelWithRepositorySchema `json:"items"`
}

type CreateModelSchema struct {
	Version     string                            `json:"version"`
	Description string                            `json:"description"`
	Manifest    *modelschemas.ModelManifestSchema `json:"manifest"`
	BuildAt     schemas.Time                      `json:"build_at"`
	Labels      modelschemas.LabelItemsSchema     `json:"labels"`
}

func (s *CreateModelSchema) Validate() error {
	if s.Version == "" {
		return &schemas.ValidationError{Field: "version", Reason: "required field is missing"}
	}
	if s.Manifest == nil {
		return &schemas.ValidationError{Field: "manifest", Reason: "required field is missing"}
	}
	return nil
}

type FinishUploadModelSchema struct {
	Status *modelschemas.ModelUploadStatus `json:"status,omitempty"`
	Reason *string                         `json:"reason,omitempty"`
}
