package clu

import (
	"fmt"
	"net/http"
	"net/url"
)

// Config holds CLU client configuration
type Config struct {
	Endpoint       string
	APIKey         string
	ProjectName    string
	DeploymentName string
	Language       string
	APIVersion     string
	HTTPClient     *http.Client
}

// Validate checks the required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not an http(s) URL", ErrInvalidConfig, c.Endpoint)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}
	if c.ProjectName == "" {
		c.ProjectName = DefaultProjectName
	}
	if c.DeploymentName == "" {
		c.DeploymentName = DefaultDeploymentName
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// cluImpl is the internal implementation of IClient
type cluImpl struct {
	endpoint       string
	apiKey         string
	projectName    string
	deploymentName string
	language       string
	apiVersion     string
	httpClient     *http.Client
}

// --- Wire request ---

// AnalyzeRequest is the body of an analyze-conversations call.
type AnalyzeRequest struct {
	Kind          string        `json:"kind"`
	AnalysisInput AnalysisInput `json:"analysisInput"`
	Parameters    Parameters    `json:"parameters"`
}

type AnalysisInput struct {
	ConversationItem ConversationItem `json:"conversationItem"`
	IsLoggingEnabled bool             `json:"isLoggingEnabled"`
}

type ConversationItem struct {
	ParticipantID string `json:"participantId"`
	ID            string `json:"id"`
	Modality      string `json:"modality"`
	Language      string `json:"language"`
	Text          string `json:"text"`
}

type Parameters struct {
	ProjectName    string `json:"projectName"`
	DeploymentName string `json:"deploymentName"`
	Verbose        bool   `json:"verbose"`
}

// --- Wire response ---

// AnalyzeResponse is the body of a successful analyze-conversations call.
type AnalyzeResponse struct {
	Kind   string  `json:"kind"`
	Result *Result `json:"result"`
}

type Result struct {
	Query      string      `json:"query"`
	Prediction *Prediction `json:"prediction"`
}

// Prediction is the conversation prediction. TopIntent is nil when the field is absent.
type Prediction struct {
	TopIntent   *string  `json:"topIntent"`
	ProjectKind string   `json:"projectKind,omitempty"`
	Intents     []Intent `json:"intents,omitempty"`
	Entities    []Entity `json:"entities"`
}

type Intent struct {
	Category        string  `json:"category"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type Entity struct {
	Category        string  `json:"category"`
	Text            string  `json:"text"`
	Offset          int     `json:"offset,omitempty"`
	Length          int     `json:"length,omitempty"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
