package clu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"pedidos-rapidisimos/pkg/log"
)

// newCLUImpl creates a new CLU implementation
func newCLUImpl(cfg Config) *cluImpl {
	return &cluImpl{
		endpoint:       strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:         cfg.APIKey,
		projectName:    cfg.ProjectName,
		deploymentName: cfg.DeploymentName,
		language:       cfg.Language,
		apiVersion:     cfg.APIVersion,
		httpClient:     cfg.HTTPClient,
	}
}

// Analyze sends a single-turn conversation analysis request.
func (c *cluImpl) Analyze(ctx context.Context, text string) (*Prediction, error) {
	resp, err := c.callAPI(ctx, c.buildRequest(text))
	if err != nil {
		return nil, err
	}

	if resp.Result == nil || resp.Result.Prediction == nil {
		return nil, fmt.Errorf("%w: result.prediction is missing", ErrMalformedResponse)
	}
	pred := resp.Result.Prediction
	if pred.TopIntent == nil {
		return nil, fmt.Errorf("%w: result.prediction.topIntent is missing", ErrMalformedResponse)
	}
	return pred, nil
}

// Deployment returns the project and deployment being queried
func (c *cluImpl) Deployment() string {
	return c.projectName + "/" + c.deploymentName
}

func (c *cluImpl) buildRequest(text string) AnalyzeRequest {
	return AnalyzeRequest{
		Kind: taskKind,
		AnalysisInput: AnalysisInput{
			ConversationItem: ConversationItem{
				ParticipantID: participantID,
				ID:            itemID,
				Modality:      modalityText,
				Language:      c.language,
				Text:          text,
			},
			IsLoggingEnabled: false,
		},
		Parameters: Parameters{
			ProjectName:    c.projectName,
			DeploymentName: c.deploymentName,
			Verbose:        true,
		},
	}
}

func (c *cluImpl) analyzeURL() string {
	q := url.Values{}
	q.Set("api-version", c.apiVersion)
	return c.endpoint + analyzePath + "?" + q.Encode()
}

// callAPI sends a request to the Conversation Analysis API
func (c *cluImpl) callAPI(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("clu: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.analyzeURL(), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrServiceCall, err)
	}
	httpReq.Header.Set(headerContentType, contentTypeJSON)
	httpReq.Header.Set(headerSubscriptionKey, c.apiKey)
	httpReq.Header.Set(headerClientRequestID, requestID(ctx))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceCall, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrServiceCall, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil {
			apiErr.Code = er.Error.Code
			apiErr.Message = er.Error.Message
		}
		return nil, fmt.Errorf("%w: %w", ErrServiceCall, apiErr)
	}

	var result AnalyzeResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrMalformedResponse, err)
	}

	return &result, nil
}

func requestID(ctx context.Context) string {
	if id := log.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
