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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/header"
	"github.com/infrawatch/infrawatch/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

// FieldManager owns the ConfigMap fields written by InfraWatch.
const FieldManager = "infrawatch"

// ConfigMap data keys besides the document itself.
const (
	configMapFormatKey    = "format"
	configMapTimestampKey = "timestamp"
)

// ConfigMapWriter applies a serialized document to a ConfigMap, creating it
// when absent.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
	now       func() time.Time
}

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithKubeClient uses cs instead of the shared clientset.
func WithKubeClient(cs client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = cs
	}
}

// NewConfigMapWriter returns a writer for namespace/name.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize encodes v and applies it with server-side apply. Documents that
// embed a header.Header contribute their kind and metadata to the labels.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs := w.client
	if cs == nil {
		shared, config, err := client.Get()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		cs = shared
		slog.Debug("configmap credentials", slog.String("auth_method", client.AuthMethod(config)))
	}

	content, err := Encode(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	slog.Info("applying configmap",
		slog.String("namespace", w.namespace),
		slog.String("name", w.name),
		slog.String("format", string(w.format)))

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(ctx, w.applyConfig(v, content),
		metav1.ApplyOptions{FieldManager: FieldManager, Force: true})
	if err != nil {
		return fmt.Errorf("failed to apply configmap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// applyConfig builds the ConfigMap: data holds <kind>.<ext>, format and
// timestamp; labels carry kind and producer version.
func (w *ConfigMapWriter) applyConfig(v any, content []byte) *accorev1.ConfigMapApplyConfiguration {
	kind := header.KindSnapshot
	var meta map[string]string
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k
		}
		meta = h.GetMetadata()
	}

	version := meta[header.MetadataVersion]
	if version == "" {
		version = "unknown"
	}
	timestamp := meta[header.MetadataTimestamp]
	if timestamp == "" {
		timestamp = w.now().UTC().Format(time.RFC3339)
	}

	dataKey := strings.ToLower(kind.String()) + "." + w.format.Extension()
	return accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       "infrawatch",
			"app.kubernetes.io/component":  strings.ToLower(kind.String()),
			"app.kubernetes.io/version":    version,
			"app.kubernetes.io/managed-by": FieldManager,
		}).
		WithData(map[string]string{
			dataKey:               string(content),
			configMapFormatKey:    string(w.format),
			configMapTimestampKey: timestamp,
		})
}

// parseConfigMapURI splits cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	rest, ok := strings.CutPrefix(uri, ConfigMapURIScheme)
	if !ok {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}
	namespace, name, ok = strings.Cut(rest, "/")
	if !ok {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}
	namespace = strings.TrimSpace(namespace)
	name = strings.TrimSpace(name)
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
