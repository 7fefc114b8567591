package kubernetes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"heart-risk-service/internal/config"
	"heart-risk-service/internal/core/domain"
	ports "heart-risk-service/internal/core/ports/output"
)

// NewClient builds a typed clientset from in-cluster credentials, an
// explicit kubeconfig, or ~/.kube/config in that order.
func NewClient(cfg *config.KubernetesConfig) (kubernetes.Interface, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		restCfg, err = clientcmd.BuildConfigFromFlags("", filepath.Join(home, ".kube", "config"))
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create k8s client: %w", err)
	}
	return client, nil
}

type configMapSource struct {
	client    kubernetes.Interface
	namespace string
	name      string
	key       string
}

// NewConfigMapArtifactSource reads the artifact stored under key in a
// ConfigMap, from either data or binaryData.
func NewConfigMapArtifactSource(client kubernetes.Interface, namespace, name, key string) ports.ArtifactSource {
	return &configMapSource{client: client, namespace: namespace, name: name, key: key}
}

func (s *configMapSource) Describe() string {
	return fmt.Sprintf("configmap://%s/%s/%s", s.namespace, s.name, s.key)
}

func (s *configMapSource) Fetch(ctx context.Context) ([]byte, error) {
	cm, err := s.client.CoreV1().ConfigMaps(s.namespace).Get(ctx, s.name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, s.Describe())
		}
		return nil, fmt.Errorf("get configmap %s/%s: %w", s.namespace, s.name, err)
	}

	if data, ok := cm.BinaryData[s.key]; ok {
		return data, nil
	}
	if data, ok := cm.Data[s.key]; ok {
		return []byte(data), nil
	}
	return nil, fmt.Errorf("%w: key %q missing in %s/%s", domain.ErrArtifactNotFound, s.key, s.namespace, s.name)
}
