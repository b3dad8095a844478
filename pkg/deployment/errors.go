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

import "fmt"

// ConfigPathError reports a dotted path whose intermediate segment does not
// name a known config field. Only merge-into-existing raises it; fresh builds
// silently drop unrouted paths.
type ConfigPathError struct {
	Path    string
	Segment string
}

func (e *ConfigPathError) Error() string {
	return fmt.Sprintf("no config field %q in path %q", e.Segment, e.Path)
}

// MissingConfigError means neither a file nor inline flags supplied a
// configuration source where one is required.
type MissingConfigError struct{}

func (e *MissingConfigError) Error() string {
	return "no deployment configuration given: provide a config file or inline config flags"
}

// UserInputError reports a malformed key=value or label:value token.
type UserInputError struct {
	Token  string
	Reason string
}

func (e *UserInputError) Error() string {
	return fmt.Sprintf("invalid token %q: %s", e.Token, e.Reason)
}
