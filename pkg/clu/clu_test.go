package clu_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedidos-rapidisimos/pkg/clu"
	"pedidos-rapidisimos/pkg/log"
)

const wantBody = `{"kind":"Conversation","analysisInput":{"conversationItem":{"participantId":"1","id":"1","modality":"text","language":"es","text":"Quiero pedir una pizza"},"isLoggingEnabled":false},"parameters":{"projectName":"PedidosRapidisimos","deploymentName":"prueba2","verbose":true}}`

func newClient(t *testing.T, url string) clu.IClient {
	t.Helper()
	c, err := clu.New(clu.Config{Endpoint: url, APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestClient_Analyze(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/language/:analyze-conversations" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("api-version") != clu.DefaultAPIVersion {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("Ocp-Apim-Subscription-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":"401","message":"Access denied due to invalid subscription key."}}`))
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("X-Ms-Client-Request-Id") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, _ := io.ReadAll(r.Body)
		var req clu.AnalyzeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.AnalysisInput.ConversationItem.Text {
		case "Quiero pedir una pizza":
			if string(body) != wantBody {
				w.WriteHeader(http.StatusTeapot)
				return
			}
			w.Write([]byte(`{"kind":"ConversationResult","result":{"query":"Quiero pedir una pizza","prediction":{"topIntent":"OrdenarComida","projectKind":"Conversation","intents":[{"category":"OrdenarComida","confidenceScore":0.97}],"entities":[{"category":"producto","text":"pizza","offset":17,"length":5,"confidenceScore":0.95}]}}}`))
		case "null entities":
			w.Write([]byte(`{"kind":"ConversationResult","result":{"prediction":{"topIntent":"EstadoPedido","entities":null}}}`))
		case "no entities":
			w.Write([]byte(`{"kind":"ConversationResult","result":{"prediction":{"topIntent":"EstadoPedido"}}}`))
		case "no top intent":
			w.Write([]byte(`{"kind":"ConversationResult","result":{"prediction":{"entities":[]}}}`))
		case "no prediction":
			w.Write([]byte(`{"kind":"ConversationResult","result":{}}`))
		case "not json":
			w.Write([]byte(`<html>gateway</html>`))
		case "server error":
			w.WriteHeader(http.StatusInternalServerError)
		case "echo request id":
			if r.Header.Get("X-Ms-Client-Request-Id") != "req-42" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"result":{"prediction":{"topIntent":"VerMenu","entities":[]}}}`))
		}
	}))
	defer ts.Close()

	c := newClient(t, ts.URL+"/")

	t.Run("Success Flow", func(t *testing.T) {
		pred, err := c.Analyze(context.Background(), "Quiero pedir una pizza")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *pred.TopIntent != "OrdenarComida" {
			t.Errorf("expected OrdenarComida, got %s", *pred.TopIntent)
		}
		if len(pred.Entities) != 1 || pred.Entities[0].Text != "pizza" || pred.Entities[0].ConfidenceScore != 0.95 {
			t.Errorf("unexpected entities: %+v", pred.Entities)
		}
		if len(pred.Intents) != 1 {
			t.Errorf("expected verbose intents, got %+v", pred.Intents)
		}
	})

	t.Run("Null and absent entities", func(t *testing.T) {
		for _, text := range []string{"null entities", "no entities"} {
			pred, err := c.Analyze(context.Background(), text)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", text, err)
			}
			if len(pred.Entities) != 0 {
				t.Errorf("%s: expected no entities, got %+v", text, pred.Entities)
			}
		}
	})

	t.Run("Malformed responses", func(t *testing.T) {
		for _, text := range []string{"no top intent", "no prediction", "not json"} {
			_, err := c.Analyze(context.Background(), text)
			if !errors.Is(err, clu.ErrMalformedResponse) {
				t.Errorf("%s: expected ErrMalformedResponse, got %v", text, err)
			}
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := c.Analyze(context.Background(), "server error")
		if !errors.Is(err, clu.ErrServiceCall) {
			t.Fatalf("expected ErrServiceCall, got %v", err)
		}
		var apiErr *clu.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected APIError with status 500, got %v", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, err := clu.New(clu.Config{Endpoint: ts.URL, APIKey: "wrong"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = bad.Analyze(context.Background(), "Quiero pedir una pizza")
		var apiErr *clu.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Code != "401" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
		if !errors.Is(err, clu.ErrServiceCall) {
			t.Errorf("expected ErrServiceCall, got %v", err)
		}
	})

	t.Run("Request id from context", func(t *testing.T) {
		ctx := log.WithRequestID(context.Background(), "req-42")
		pred, err := c.Analyze(ctx, "echo request id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *pred.TopIntent != "VerMenu" {
			t.Errorf("unexpected intent %s", *pred.TopIntent)
		}
	})

	t.Run("Deployment", func(t *testing.T) {
		if got := c.Deployment(); got != "PedidosRapidisimos/prueba2" {
			t.Errorf("unexpected deployment %s", got)
		}
	})
}

func TestClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := newClient(t, url)
	_, err := c.Analyze(context.Background(), "hola")
	if !errors.Is(err, clu.ErrServiceCall) {
		t.Fatalf("expected ErrServiceCall, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     clu.Config
		wantErr bool
	}{
		{"missing endpoint", clu.Config{APIKey: "k"}, true},
		{"missing key", clu.Config{Endpoint: "https://lang.cognitiveservices.azure.com"}, true},
		{"not a url", clu.Config{Endpoint: "lang-endpoint", APIKey: "k"}, true},
		{"valid", clu.Config{Endpoint: "https://lang.cognitiveservices.azure.com", APIKey: "k"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, clu.ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.ProjectName != clu.DefaultProjectName || cfg.DeploymentName != clu.DefaultDeploymentName {
				t.Errorf("defaults not applied: %+v", cfg)
			}
			if cfg.Language != "es" || cfg.APIVersion != clu.DefaultAPIVersion || cfg.HTTPClient == nil {
				t.Errorf("defaults not applied: %+v", cfg)
			}
		})
	}
}
