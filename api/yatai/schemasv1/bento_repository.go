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

type BentoRepositorySchema struct {
	ResourceSchema
	Creator     *UserSchema  `json:"creator,omitempty"`
	Description string       `json:"description"`
	LatestBento *BentoSchema `json:"latest_bento,omitempty"`
}

type BentoRepositoryListSchema struct {
	BaseListSchema
	Items []*BentoRepositorySchema `json:"items"`
}

type CreateBentoRepositorySchema struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateBentoRepositorySchema struct {
	Description *string `json:"description,omitempty"`
}
