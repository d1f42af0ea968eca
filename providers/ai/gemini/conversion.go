package gemini

import (
	"strings"

	"github.com/google/uuid"

	"github.com/leofalp/serpsim/internal/utils"
	"github.com/leofalp/serpsim/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a Gemini generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents:         buildContents(request.Messages),
		GenerationConfig: buildGenerationConfig(request.GenerationConfig),
	}

	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{Parts: []part{{Text: request.SystemPrompt}}}
	}

	if g := request.Grounding; g != nil {
		if g.GoogleSearch {
			req.Tools = append(req.Tools, tool{GoogleSearch: &emptyTool{}})
		}
		if g.GoogleMaps {
			req.Tools = append(req.Tools, tool{GoogleMaps: &emptyTool{}})
		}
		if g.Location != nil {
			req.ToolConfig = &toolConfig{RetrievalConfig: &retrievalConfig{
				LatLng: &latLng{Latitude: g.Location.Latitude, Longitude: g.Location.Longitude},
			}}
		}
	}

	return req
}

// buildContents maps user -> user and assistant -> model. Assistant turns
// without parts are skipped since Gemini rejects empty contents.
func buildContents(messages []ai.Message) []content {
	contents := make([]content, 0, len(messages))

	for _, msg := range messages {
		c := content{Role: "user"}
		if msg.Role == ai.RoleAssistant {
			c.Role = "model"
		}

		if len(msg.ContentParts) > 0 {
			c.Parts = contentPartsToGeminiParts(msg.ContentParts)
		} else if msg.Content != "" || msg.Role != ai.RoleAssistant {
			c.Parts = []part{{Text: msg.Content}}
		}

		if len(c.Parts) > 0 {
			contents = append(contents, c)
		}
	}

	return contents
}

// contentPartsToGeminiParts converts generic parts. For images a URI wins
// over inline data when both are set.
func contentPartsToGeminiParts(contentParts []ai.ContentPart) []part {
	var parts []part
	for _, cp := range contentParts {
		switch cp.Type {
		case ai.ContentTypeText:
			parts = append(parts, part{Text: cp.Text})
		case ai.ContentTypeImage:
			if cp.Image == nil {
				continue
			}
			if cp.Image.URI != "" {
				parts = append(parts, part{FileData: &fileData{MimeType: cp.Image.MimeType, FileURI: cp.Image.URI}})
			} else {
				parts = append(parts, part{InlineData: &inlineData{MimeType: cp.Image.MimeType, Data: cp.Image.Data}})
			}
		}
	}
	return parts
}

func buildGenerationConfig(cfg *ai.GenerationConfig) *generationConfig {
	if cfg == nil {
		return nil
	}

	gc := &generationConfig{ResponseModalities: cfg.ResponseModalities}
	if cfg.Temperature > 0 {
		gc.Temperature = utils.Ptr(float64(cfg.Temperature))
	}
	if cfg.MaxOutputTokens > 0 {
		gc.MaxOutputTokens = utils.Ptr(cfg.MaxOutputTokens)
	}
	return gc
}

// geminiToGeneric converts a Gemini response to ai.ChatResponse. Only the
// first candidate is used.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:    resp.ResponseID,
		Model: resp.ModelVersion,
	}
	if result.Id == "" {
		result.Id = "gemini-" + uuid.NewString()
	}

	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
			ReasoningTokens:  resp.UsageMetadata.ThoughtsTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		result.FinishReason = "error"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	cand := resp.Candidates[0]
	result.FinishReason = mapFinishReason(cand.FinishReason)

	if cand.Content != nil {
		var text []string
		for _, p := range cand.Content.Parts {
			if p.Text != "" && !p.Thought {
				text = append(text, p.Text)
			}
			if p.InlineData != nil {
				result.Images = append(result.Images, ai.ImageData{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data})
			}
			if p.FileData != nil {
				result.Images = append(result.Images, ai.ImageData{MimeType: p.FileData.MimeType, URI: p.FileData.FileURI})
			}
		}
		// Gemini splits long answers over several text parts.
		result.Content = strings.Join(text, "")
	}

	result.Grounding = mapGroundingMetadata(cand.GroundingMetadata)
	return result
}

func mapFinishReason(reason string) string {
	switch reason {
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT", "IMAGE_SAFETY":
		return "content_filter"
	default:
		return "stop"
	}
}

// mapGroundingMetadata keeps chunk order; a source's Index is its position in
// the chunk list so citations can refer to it.
func mapGroundingMetadata(gm *groundingMetadata) *ai.GroundingMetadata {
	if gm == nil {
		return nil
	}

	result := &ai.GroundingMetadata{SearchQueries: gm.WebSearchQueries}

	for i, chunk := range gm.GroundingChunks {
		switch {
		case chunk.Web != nil:
			result.Sources = append(result.Sources, ai.GroundingSource{Index: i, Kind: ai.SourceWeb, URI: chunk.Web.URI, Title: chunk.Web.Title})
		case chunk.Maps != nil:
			result.Sources = append(result.Sources, ai.GroundingSource{Index: i, Kind: ai.SourceMaps, URI: chunk.Maps.URI, Title: chunk.Maps.Title})
		}
	}

	for _, support := range gm.GroundingSupports {
		citation := ai.Citation{
			SourceIndices: support.GroundingChunkIndices,
			Confidence:    support.ConfidenceScores,
		}
		if support.Segment != nil {
			citation.Text = support.Segment.Text
			citation.StartIndex = support.Segment.StartIndex
			citation.EndIndex = support.Segment.EndIndex
		}
		result.Citations = append(result.Citations, citation)
	}

	if gm.SearchEntryPoint != nil && gm.SearchEntryPoint.RenderedContent != "" {
		result.EntryPoint = convertEntryPoint(gm.SearchEntryPoint.RenderedContent)
	}

	return result
}
