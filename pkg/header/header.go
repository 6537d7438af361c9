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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every InfraWatch document.
const APIVersion = "infrawatch.dev/v1"

// Metadata keys written by Stamp.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataHost      = "host"
)

// Kind identifies the document carried behind a Header.
type Kind string

const (
	KindSnapshot     Kind = "Snapshot"
	KindHealthReport Kind = "HealthReport"
	KindActionResult Kind = "ActionResult"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSnapshot, KindHealthReport, KindActionResult:
		return true
	default:
		return false
	}
}

// Header carries kind, schema version and free-form metadata.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option configures a Header.
type Option func(*Header)

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion sets the schema version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// WithMetadata adds a single metadata entry. Empty values are ignored.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		h.SetMetadata(key, value)
	}
}

// New returns a Header with an initialized metadata map.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init resets the header to kind at the current API version and stamps it
// with the current time.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = make(map[string]string)
	h.Stamp(time.Now(), version)
}

// Stamp records the UTC timestamp and the producing tool version.
func (h *Header) Stamp(now time.Time, version string) {
	h.SetMetadata(MetadataTimestamp, now.UTC().Format(time.RFC3339))
	h.SetMetadata(MetadataVersion, version)
}

// SetMetadata sets key to value, allocating the map when needed.
func (h *Header) SetMetadata(key, value string) {
	if value == "" {
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}

// GetKind returns the document kind.
func (h *Header) GetKind() Kind {
	return h.Kind
}

// GetMetadata returns the metadata map.
func (h *Header) GetMetadata() map[string]string {
	return h.Metadata
}
