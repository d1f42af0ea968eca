package research

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/leofalp/serpsim/core/serp"
	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
	"github.com/leofalp/serpsim/providers/observability/slogobs"
)

// fakeProvider records requests and replies with a canned response.
type fakeProvider struct {
	requests []ai.ChatRequest
	resp     *ai.ChatResponse
	err      error
}

func (f *fakeProvider) SendMessage(_ context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	f.requests = append(f.requests, request)
	return f.resp, f.err
}

const simulatedPage = `**Volume de Busca:** 5.400
**CPC Estimado:** EUR 1.20 | USD 1.30
---SERP_START---
Ad: Curso de Violão ||| hotmart.com ||| https://hotmart.com/violao ||| Aulas online.
Organic: Aprenda violão ||| youtube.com ||| https://youtube.com/watch?v=1 ||| Vídeo.
Organic: linha quebrada ||| sem campos
---SERP_END---
---SUMMARY_START---
Vídeos dominam.
---SUMMARY_END---
**Dados Históricos (JSON):** [{"date": "2024-01-01", "value": 40}]`

func TestSimulate(t *testing.T) {
	provider := &fakeProvider{resp: &ai.ChatResponse{
		Content: simulatedPage,
		Grounding: &ai.GroundingMetadata{Sources: []ai.GroundingSource{
			{Index: 0, Kind: ai.SourceWeb, URI: "https://a.example", Title: "A"},
			{Index: 1, Kind: ai.SourceMaps, URI: "https://maps.example", Title: "Escola"},
		}},
	}}
	var logs bytes.Buffer
	observer := slogobs.New(slogobs.WithOutput(&logs), slogobs.WithLevel(slogobs.LevelTrace))
	svc := NewService(provider, WithObserver(observer))

	params, err := ForMarket("curso de violão", "pt")
	if err != nil {
		t.Fatal(err)
	}
	params.Device, params.Language = "mobile", "pt"

	result, err := svc.Simulate(context.Background(), params, &UserLocation{Latitude: 38.72, Longitude: -9.14})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	req := provider.requests[0]
	if req.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q", req.Model)
	}
	if g := req.Grounding; g == nil || !g.GoogleSearch || !g.GoogleMaps || g.Location.Latitude != 38.72 {
		t.Errorf("grounding = %+v", req.Grounding)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{`"curso de violão"`, "Mercado Alvo (País): Portugal", "Formato: EUR VALOR | USD VALOR", "google.pt"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if result.CPC.Local != "EUR 1.20" {
		t.Errorf("CPC = %+v", result.CPC)
	}
	if len(result.Sources) != 2 || result.Sources[0].Web == nil || result.Sources[1].Maps == nil {
		t.Errorf("Sources = %+v", result.Sources)
	}
	if serp.CountIssues(result.Issues, serp.MalformedRow) != 1 {
		t.Errorf("Issues = %v", result.Issues)
	}
	if got := observer.CounterValue(observability.MetricSerpRowsDropped); got != 1 {
		t.Errorf("rows dropped counter = %d", got)
	}
	if !strings.Contains(logs.String(), "serp parse issue") {
		t.Errorf("parse issue not logged:\n%s", logs.String())
	}
}

func TestSimulate_Errors(t *testing.T) {
	upstream := errors.New("connection reset")
	svc := NewService(&fakeProvider{err: upstream})

	if _, err := svc.Simulate(context.Background(), SearchParameters{Query: "  "}, nil); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("blank query: got %v", err)
	}

	_, err := svc.Simulate(context.Background(), DefaultParameters("violão"), nil)
	if !errors.Is(err, ErrSearchFailed) || !errors.Is(err, upstream) {
		t.Errorf("transport failure: got %v", err)
	}
}

func TestSimulate_GlobalMarketAndNoLocation(t *testing.T) {
	provider := &fakeProvider{resp: &ai.ChatResponse{Content: ""}}
	svc := NewService(provider, WithModels(Models{Search: "custom-model"}))

	params, _ := ForMarket("violão", GlobalMarket)
	result, err := svc.Simulate(context.Background(), params, nil)
	if err != nil {
		t.Fatal(err)
	}

	req := provider.requests[0]
	if req.Model != "custom-model" || req.Grounding.Location != nil {
		t.Errorf("request = %+v", req)
	}
	if !strings.Contains(req.Messages[0].Content, "Mercado Alvo (País): Análise Global") {
		t.Error("worldwide market should ask for a global analysis")
	}
	if result.Summary != serp.NoSummary || result.Sources == nil {
		t.Errorf("empty reply result = %+v", result)
	}
}

func TestAnalyze(t *testing.T) {
	provider := &fakeProvider{resp: &ai.ChatResponse{Content: "## Tendências"}}
	svc := NewService(provider)

	got, err := svc.Analyze(context.Background(), "violão", "Vídeos dominam.")
	if err != nil || got != "## Tendências" {
		t.Fatalf("Analyze = %q, %v", got, err)
	}
	req := provider.requests[0]
	if req.Model != "gemini-2.5-pro" || req.Grounding != nil {
		t.Errorf("request = %+v", req)
	}
	if !strings.Contains(req.Messages[0].Content, "---\nVídeos dominam.\n---") {
		t.Errorf("summary not embedded:\n%s", req.Messages[0].Content)
	}

	provider.err = errors.New("boom")
	if _, err := svc.Analyze(context.Background(), "violão", ""); !errors.Is(err, ErrAnalysisFailed) {
		t.Errorf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestEditImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	edited := base64.StdEncoding.EncodeToString([]byte("edited"))

	tests := []struct {
		name    string
		resp    *ai.ChatResponse
		err     error
		wantErr error
	}{
		{name: "first image returned", resp: &ai.ChatResponse{Images: []ai.ImageData{{URI: "gs://x"}, {MimeType: "image/png", Data: edited}}}},
		{name: "no image", resp: &ai.ChatResponse{Content: "sorry"}, wantErr: ErrNoImage},
		{name: "transport failure", err: errors.New("boom"), wantErr: ErrImageEditFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{resp: tt.resp, err: tt.err}
			img, err := NewService(provider).EditImage(context.Background(), png, "", "remova o fundo")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if string(img.Data) != "edited" || img.DataURL() != "data:image/png;base64,"+edited {
				t.Errorf("image = %+v", img)
			}

			req := provider.requests[0]
			if req.Model != "gemini-2.5-flash-image" || req.GenerationConfig.ResponseModalities[0] != ai.ModalityImage {
				t.Errorf("request = %+v", req)
			}
			if mime := req.Messages[0].ContentParts[0].Image.MimeType; mime != "image/png" {
				t.Errorf("sniffed mime = %q", mime)
			}
		})
	}
}
