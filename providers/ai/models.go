package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat message
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Contains all messages in the conversation except system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
	Grounding        *GroundingConfig  `json:"grounding,omitempty"`         // Optional search/maps grounding
}

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`

	// ContentParts carries multimodal input. When set it replaces Content.
	ContentParts []ContentPart `json:"content_parts,omitempty"`
}

// ContentPart is one piece of a multimodal message.
type ContentPart struct {
	Type  ContentType `json:"type"`
	Text  string      `json:"text,omitempty"`
	Image *ImageData  `json:"image,omitempty"`
}

// ImageData holds an image either inline (base64) or by URI.
type ImageData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data,omitempty"` // base64, no data: prefix
	URI      string `json:"uri,omitempty"`
}

type GenerationConfig struct {
	Temperature        float32  `json:"temperature,omitempty"`         // Sampling temperature [0..2]
	MaxOutputTokens    int      `json:"max_output_tokens,omitempty"`   // Optional max tokens for the output
	ResponseModalities []string `json:"response_modalities,omitempty"` // e.g. ["TEXT"], ["IMAGE"]
}

// GroundingConfig enables the provider's built-in retrieval tools.
type GroundingConfig struct {
	GoogleSearch bool    `json:"google_search,omitempty"`
	GoogleMaps   bool    `json:"google_maps,omitempty"`
	Location     *LatLng `json:"location,omitempty"` // Biases maps/search retrieval when known
}

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
	ReasoningTokens  int `json:"reasoning_tokens,omitempty"`
}

// ChatResponse represents the response from a chat completion
type ChatResponse struct {
	Id           string      `json:"id"`
	Model        string      `json:"model"`
	Content      string      `json:"content"`
	Images       []ImageData `json:"images,omitempty"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Refusal      string      `json:"refusal,omitempty"` // Block reason when the prompt was filtered
	Usage        *Usage      `json:"usage,omitempty"`

	Grounding *GroundingMetadata `json:"grounding,omitempty"`
}

// GroundingMetadata describes the retrieval the model performed.
type GroundingMetadata struct {
	Sources       []GroundingSource `json:"sources,omitempty"`
	SearchQueries []string          `json:"search_queries,omitempty"`
	Citations     []Citation        `json:"citations,omitempty"`
	EntryPoint    *SearchEntryPoint `json:"entry_point,omitempty"`
}

// GroundingSource is one retrieved document, in the order the provider listed it.
type GroundingSource struct {
	Index int        `json:"index"`
	Kind  SourceKind `json:"kind"`
	URI   string     `json:"uri"`
	Title string     `json:"title,omitempty"`
}

// Citation links a span of the answer to the sources supporting it.
type Citation struct {
	Text          string    `json:"text,omitempty"`
	StartIndex    int       `json:"start_index,omitempty"`
	EndIndex      int       `json:"end_index,omitempty"`
	SourceIndices []int     `json:"source_indices,omitempty"`
	Confidence    []float64 `json:"confidence,omitempty"`
}

// SearchEntryPoint is the search suggestion widget returned with grounded answers.
type SearchEntryPoint struct {
	HTML        string   `json:"html,omitempty"`
	Markdown    string   `json:"markdown,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

// ContentType identifies the kind of a [ContentPart].
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
)

// SourceKind tells which retrieval tool produced a [GroundingSource].
type SourceKind string

const (
	SourceWeb  SourceKind = "web"
	SourceMaps SourceKind = "maps"
)

const (
	ModalityText  = "TEXT"
	ModalityImage = "IMAGE"
)

// NewTextMessage builds a plain text message.
func NewTextMessage(role MessageRole, text string) Message {
	return Message{Role: role, Content: text}
}

// NewImageMessage builds a user message with an inline image followed by a text instruction.
func NewImageMessage(mimeType, base64Data, text string) Message {
	return Message{
		Role: RoleUser,
		ContentParts: []ContentPart{
			{Type: ContentTypeImage, Image: &ImageData{MimeType: mimeType, Data: base64Data}},
			{Type: ContentTypeText, Text: text},
		},
	}
}
