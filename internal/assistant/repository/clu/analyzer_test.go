package clu_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pedidos-rapidisimos/internal/assistant"
	cluRepo "pedidos-rapidisimos/internal/assistant/repository/clu"
	pkgCLU "pedidos-rapidisimos/pkg/clu"
	pkgLog "pedidos-rapidisimos/pkg/log"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, &hits
}

func TestAnalyze_Success(t *testing.T) {
	ts, hits := newServer(t, http.StatusOK, `{"kind":"ConversationResult","result":{"prediction":{"topIntent":"OrdenarComida","entities":[{"category":"producto","text":"pizza","confidenceScore":0.95},{"category":"producto","text":"soda","confidenceScore":0.7},{"category":"número_pedido","text":"4521","confidenceScore":0.88},{"category":"d\u00eda","text":"sábado","confidenceScore":0.6}]}}}`)

	a := cluRepo.New(pkgLog.NewNop(), pkgCLU.Config{Endpoint: ts.URL, APIKey: "k"})
	pred, err := a.Analyze(context.Background(), "Quiero pedir una pizza")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pred.TopIntent != "OrdenarComida" {
		t.Errorf("expected OrdenarComida, got %s", pred.TopIntent)
	}
	want := []assistant.Entity{
		{Category: "producto", Text: "pizza", ConfidenceScore: 0.95},
		{Category: "producto", Text: "soda", ConfidenceScore: 0.7},
		{Category: "número_pedido", Text: "4521", ConfidenceScore: 0.88},
		{Category: "día", Text: "sábado", ConfidenceScore: 0.6},
	}
	if len(pred.Entities) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(pred.Entities))
	}
	for i := range want {
		if pred.Entities[i] != want[i] {
			t.Errorf("entity %d: expected %+v, got %+v", i, want[i], pred.Entities[i])
		}
	}
	if got := []byte(pred.Entities[2].Category); !bytes.Equal(got, []byte("n\xc3\xbamero_pedido")) {
		t.Errorf("accented category altered on the way in: % x", got)
	}
	if *hits != 1 {
		t.Errorf("expected exactly one remote call, got %d", *hits)
	}
}

func TestAnalyze_EntitiesNormalized(t *testing.T) {
	bodies := map[string]string{
		"null":   `{"result":{"prediction":{"topIntent":"EstadoPedido","entities":null}}}`,
		"absent": `{"result":{"prediction":{"topIntent":"EstadoPedido"}}}`,
		"empty":  `{"result":{"prediction":{"topIntent":"EstadoPedido","entities":[]}}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ts, _ := newServer(t, http.StatusOK, body)
			a := cluRepo.New(pkgLog.NewNop(), pkgCLU.Config{Endpoint: ts.URL, APIKey: "k"})

			pred, err := a.Analyze(context.Background(), "¿Cuál es el estado de mi pedido?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pred.Entities == nil {
				t.Fatalf("expected empty, non-nil entities")
			}
			if len(pred.Entities) != 0 {
				t.Errorf("expected no entities, got %+v", pred.Entities)
			}
		})
	}
}

func TestAnalyze_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   assistant.ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"code":"401","message":"denied"}}`, assistant.KindNLUService},
		{"server error", http.StatusInternalServerError, ``, assistant.KindNLUService},
		{"missing top intent", http.StatusOK, `{"result":{"prediction":{"entities":[]}}}`, assistant.KindMalformedResponse},
		{"garbage", http.StatusOK, `not json`, assistant.KindMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, hits := newServer(t, tt.status, tt.body)
			a := cluRepo.New(pkgLog.NewNop(), pkgCLU.Config{Endpoint: ts.URL, APIKey: "k"})

			_, err := a.Analyze(context.Background(), "hola")
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := assistant.KindOf(err); got != tt.want {
				t.Errorf("expected %s, got %s (%v)", tt.want, got, err)
			}
			if *hits != 1 {
				t.Errorf("expected no retry, got %d calls", *hits)
			}
		})
	}
}

func TestAnalyze_ConfigErrorSkipsNetwork(t *testing.T) {
	ts, hits := newServer(t, http.StatusOK, `{"result":{"prediction":{"topIntent":"VerMenu"}}}`)

	tests := []struct {
		name string
		cfg  pkgCLU.Config
	}{
		{"missing key", pkgCLU.Config{Endpoint: ts.URL}},
		{"missing endpoint", pkgCLU.Config{APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := cluRepo.New(pkgLog.NewNop(), tt.cfg)
			if a.ConfigErr() == nil {
				t.Fatalf("expected config error")
			}

			_, err := a.Analyze(context.Background(), "hola")
			if got := assistant.KindOf(err); got != assistant.KindConfig {
				t.Errorf("expected %s, got %s", assistant.KindConfig, got)
			}
		})
	}

	if *hits != 0 {
		t.Errorf("expected no network calls, got %d", *hits)
	}
}
