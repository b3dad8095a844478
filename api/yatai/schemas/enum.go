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

package schemas

import (
	"encoding/json"
	"fmt"
)

// UnmarshalEnum decodes a wire string into a closed enumeration. Membership is
// case-sensitive; anything outside the set is a ValidationError.
func UnmarshalEnum[T ~string](b []byte, name string, out *T, members ...T) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &ValidationError{Field: name, Reason: "enum value is not a string", Err: err}
	}
	for _, member := range members {
		if string(member) == s {
			*out = T(s)
			return nil
		}
	}
	return &ValidationError{Field: name, Reason: fmt.Sprintf("unknown value %q", s)}
}
