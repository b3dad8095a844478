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
	"github.com/bentoml/yatai-go/api/yatai/schemas"
)

type BaseSchema struct {
	Uid       string        `json:"uid"`
	CreatedAt schemas.Time  `json:"created_at"`
	UpdatedAt *schemas.Time `json:"updated_at,omitempty"`
	DeletedAt *schemas.Time `json:"deleted_at,omitempty"`
}

func (s *BaseSchema) Validate() error {
	if s.Uid == "" {
		return &schemas.ValidationError{Field: "uid", Reason: "required field is missing"}
	}
	if s.CreatedAt.IsZero() {
		return &schemas.ValidationError{Field: "created_at", Reason: "required field is missing"}
	}
	if s.UpdatedAt != nil && s.UpdatedAt.Std().Before(s.CreatedAt.Std()) {
		return &schemas.ValidationError{Field: "updated_at", Reason: "must not precede created_at"}
	}
	return nil
}

type BaseListSchema struct {
	Start uint `json:"start"`
	Count uint `json:"count"`
	Total uint `json:"total"`
}
