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
	"time"

	"github.com/araddon/dateparse"
)

// TimeFormat is the wire encoding for every timestamp the control plane
// exchanges: microsecond precision, no timezone offset.
const TimeFormat = "2006-01-02 15:04:05.000000"

// Time marshals strictly to TimeFormat but accepts any unambiguous date/time
// string on unmarshal. Forgiving on input, strict on output.
type Time time.Time

func (t Time) Std() time.Time {
	return time.Time(t)
}

func (t Time) Ptr() *Time {
	return &t
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Equal(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

func (t Time) String() string {
	return time.Time(t).Format(TimeFormat)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var v *string
	if err := json.Unmarshal(b, &v); err != nil {
		return &ValidationError{Reason: "timestamp is not a string", Err: err}
	}
	if v == nil || *v == "" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := dateparse.ParseAny(*v)
	if err != nil {
		return &ValidationError{Reason: "unparseable timestamp " + *v, Err: err}
	}
	*t = Time(parsed)
	return nil
}
