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

package yataiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"resty.dev/v3"
)

const requestIdHeaderName = "X-Request-Id"

var defaultClient *resty.Client

func GetDefaultClient() *resty.Client {
	if defaultClient == nil {
		defaultClient = resty.New().
			SetTimeout(90 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(2 * time.Second).
			SetRetryMaxWaitTime(10 * time.Second).
			SetHeader("Content-Type", "application/json")
	}
	return defaultClient
}

// DoJsonRequest performs the call and hands the raw response body back to
// the caller, which decodes it through the schema converter.
func DoJsonRequest(ctx context.Context, method string, url string, headers map[string]string, query map[string]string, payload interface{}) ([]byte, int, error) {
	client := GetDefaultClient()

	req := client.R().
		SetContext(ctx).
		SetBody(payload).
		SetHeaders(headers).
		SetHeader(requestIdHeaderName, xid.New().String()).
		SetQueryParams(query)

	var resp *resty.Response
	var err error

	switch method {
	case "GET":
		resp, err = req.Get(url)
	case "POST":
		resp, err = req.Post(url)
	case "PUT":
		resp, err = req.Put(url)
	case "DELETE":
		resp, err = req.Delete(url)
	case "PATCH":
		resp, err = req.Patch(url)
	default:
		return nil, 0, fmt.Errorf("unsupported method: %s", method)
	}

	if err != nil {
		return nil, 0, fmt.Errorf("request error: %w", err)
	}

	if resp.IsError() {
		return nil, resp.StatusCode(), fmt.Errorf("http %s %s failed with status %d: %s", method, url, resp.StatusCode(), resp.String())
	}

	return resp.Bytes(), resp.StatusCode(), nil
}
