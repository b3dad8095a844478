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

import "strings"

type UserSchema struct {
	ResourceSchema
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarUrl string `json:"avatar_url"`
}

// DisplayName joins first and last name, falling back to the account name
// when neither is set.
func (u *UserSchema) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Name
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserListSchema struct {
	BaseListSchema
	Items []*UserSchema `json:"items"`
}
