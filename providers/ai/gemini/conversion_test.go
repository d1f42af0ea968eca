package gemini

import (
	"strings"
	"testing"

	"github.com/leofalp/serpsim/providers/ai"
)

func TestBuildContents(t *testing.T) {
	contents := buildContents([]ai.Message{
		ai.NewTextMessage(ai.RoleUser, "Olá"),
		ai.NewTextMessage(ai.RoleAssistant, ""),
		ai.NewTextMessage(ai.RoleAssistant, "Oi!"),
		{Role: ai.RoleUser, ContentParts: []ai.ContentPart{{Type: ai.ContentTypeImage, Image: &ai.ImageData{MimeType: "image/jpeg", URI: "gs://b/o.jpg", Data: "ignored"}}}},
	})

	if len(contents) != 3 {
		t.Fatalf("expected empty assistant turn to be skipped, got %d contents", len(contents))
	}
	if contents[1].Role != "model" || contents[1].Parts[0].Text != "Oi!" {
		t.Errorf("assistant mapping = %+v", contents[1])
	}
	if fd := contents[2].Parts[0].FileData; fd == nil || fd.FileURI != "gs://b/o.jpg" {
		t.Errorf("URI should win over inline data, got %+v", contents[2].Parts[0])
	}
}

func TestRequestToGemini_NoGrounding(t *testing.T) {
	req := requestToGemini(ai.ChatRequest{
		SystemPrompt:     "Você é um assistente.",
		GenerationConfig: &ai.GenerationConfig{Temperature: 0.5, MaxOutputTokens: 100},
	})

	if req.Tools != nil || req.ToolConfig != nil {
		t.Errorf("no grounding requested, got tools %+v config %+v", req.Tools, req.ToolConfig)
	}
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "Você é um assistente." {
		t.Errorf("system instruction = %+v", req.SystemInstruction)
	}
	if *req.GenerationConfig.Temperature != 0.5 || *req.GenerationConfig.MaxOutputTokens != 100 {
		t.Errorf("generation config = %+v", req.GenerationConfig)
	}
}

func TestGeminiToGeneric_Thoughts(t *testing.T) {
	resp := geminiToGeneric(generateContentResponse{
		Candidates: []candidate{{
			Content:      &content{Parts: []part{{Text: "thinking...", Thought: true}, {Text: "answer"}}},
			FinishReason: "MAX_TOKENS",
		}},
	})
	if resp.Content != "answer" {
		t.Errorf("thought parts must be dropped, got %q", resp.Content)
	}
	if resp.FinishReason != "length" {
		t.Errorf("FinishReason = %q", resp.FinishReason)
	}
	if resp.Grounding != nil {
		t.Errorf("expected no grounding, got %+v", resp.Grounding)
	}
}

func TestConvertEntryPoint(t *testing.T) {
	html := `<style>.chip{color:red}</style>
<div class="container">
  <div class="headline">Pesquisas relacionadas</div>
  <div class="carousel">
    <a class="chip" href="https://www.google.com/search?q=curso+viol%C3%A3o">curso violão</a>
    <a class="chip" href="https://www.google.com/search?q=aula+viol%C3%A3o"> aula violão </a>
  </div>
</div>`

	ep := convertEntryPoint(html)

	if ep.HTML != html {
		t.Error("raw HTML must be preserved")
	}
	if len(ep.Suggestions) != 2 || ep.Suggestions[1] != "aula violão" {
		t.Errorf("Suggestions = %q", ep.Suggestions)
	}
	if strings.Contains(ep.Markdown, "color:red") {
		t.Errorf("style content leaked into markdown: %q", ep.Markdown)
	}
	if !strings.Contains(ep.Markdown, "[curso violão](https://www.google.com/search?q=curso+viol%C3%A3o)") {
		t.Errorf("Markdown = %q", ep.Markdown)
	}
}
