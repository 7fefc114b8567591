package kserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"heart-risk-service/internal/core/domain"
	ports "heart-risk-service/internal/core/ports/output"
)

// Client scores vectors against a model served over the KServe v1
// prediction protocol. The served model must return class probabilities.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

var _ ports.Classifier = (*Client)(nil)

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

func (c *Client) Describe() string {
	return fmt.Sprintf("%s/v1/models/%s", c.baseURL, c.model)
}

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

type modelStatus struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// Ready checks that the endpoint serves the model and reports it ready.
func (c *Client) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Describe(), nil)
	if err != nil {
		return fmt.Errorf("create readiness request: %w", err)
	}

	var status modelStatus
	if err := c.do(req, &status); err != nil {
		return err
	}
	if !status.Ready {
		return fmt.Errorf("%w: model %s is not ready", domain.ErrModelUnavailable, c.model)
	}
	return nil
}

func (c *Client) PredictProba(ctx context.Context, vector domain.FeatureVector) ([]float64, error) {
	if len(vector) != domain.FeatureCount {
		return nil, fmt.Errorf("%w: vector has %d columns, model expects %d",
			domain.ErrContractViolation, len(vector), domain.FeatureCount)
	}

	body, err := json.Marshal(predictRequest{Instances: [][]float64{vector}})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Describe()+":predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp predictResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Predictions) != 1 || len(resp.Predictions[0]) != 2 {
		return nil, fmt.Errorf("%w: expected one row of two class probabilities, got %v",
			domain.ErrContractViolation, resp.Predictions)
	}
	return resp.Predictions[0], nil
}

func (c *Client) Predict(ctx context.Context, vector domain.FeatureVector) (int, error) {
	proba, err := c.PredictProba(ctx, vector)
	if err != nil {
		return 0, err
	}
	if proba[1] > proba[0] {
		return domain.LabelDisease, nil
	}
	return domain.LabelNoDisease, nil
}

func (c *Client) do(req *http.Request, out any) error {
	log.WithFields(log.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("calling model endpoint")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned %d: %s",
			domain.ErrModelUnavailable, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrContractViolation, err)
	}
	return nil
}
