// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testPayload struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondJSON(w, tt.statusCode, testPayload{Message: tt.name, Code: tt.statusCode})

			if w.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}
			var got testPayload
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if got.Message != tt.name || got.Code != tt.statusCode {
				t.Errorf("unexpected body: %+v", got)
			}
		})
	}
}

func TestRespondJSON_EncodingErrorYields500(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "application/json" {
		t.Error("failed encoding must not advertise a JSON body")
	}
}

func TestRespondJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, nil)

	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected 'null\\n', got %q", body)
	}
}

// Serializer implementations are interchangeable.
var (
	_ Serializer = (*Writer)(nil)
	_ Serializer = (*ConfigMapWriter)(nil)
)

func TestClose_NonCloser(t *testing.T) {
	s := serializerFunc(func(context.Context, any) error { return nil })
	if err := Close(s); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

type serializerFunc func(ctx context.Context, v any) error

func (f serializerFunc) Serialize(ctx context.Context, v any) error { return f(ctx, v) }
