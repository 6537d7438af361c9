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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// Interface is the clientset surface used by callers; fake clientsets satisfy it.
type Interface = kubernetes.Interface

// EnvKubeconfig names the environment variable consulted for a kubeconfig path.
const EnvKubeconfig = "KUBECONFIG"

var (
	once       sync.Once
	shared     Interface
	sharedConf *rest.Config
	sharedErr  error
)

// Get returns the process-wide clientset, resolving credentials on first use.
func Get() (Interface, *rest.Config, error) {
	once.Do(func() {
		shared, sharedConf, sharedErr = Build("")
	})
	return shared, sharedConf, sharedErr
}

// Build creates a new clientset without touching the shared one.
// An empty kubeconfig triggers discovery.
func Build(kubeconfig string) (Interface, *rest.Config, error) {
	config, err := restConfig(resolveKubeconfig(kubeconfig))
	if err != nil {
		return nil, nil, err
	}

	cs, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return cs, config, nil
}

// AuthMethod names the credential type carried by config, for audit logs.
func AuthMethod(config *rest.Config) string {
	switch {
	case config == nil:
		return "none"
	case config.AuthProvider != nil:
		return config.AuthProvider.Name
	case config.ExecProvider != nil:
		return "exec"
	case config.BearerToken != "" || config.BearerTokenFile != "":
		return "bearer-token"
	case config.CertData != nil || config.CertFile != "":
		return "cert"
	default:
		return "default"
	}
}

func resolveKubeconfig(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvKubeconfig); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

func restConfig(kubeconfig string) (*rest.Config, error) {
	if kubeconfig == "" {
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
		return config, nil
	}
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
	}
	return config, nil
}
