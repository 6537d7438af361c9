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

// Package client resolves Kubernetes credentials and hands out a shared
// clientset.
//
// InfraWatch only talks to a cluster when a snapshot is written to a
// ConfigMap (cm://namespace/name). Credentials are resolved in this order:
//
//  1. the explicit kubeconfig path passed to Build
//  2. the KUBECONFIG environment variable
//  3. ~/.kube/config, when the file exists
//  4. the in-cluster service account
//
// Get caches the result of the first resolution for the life of the process.
package client
