package research

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

// Image is a decoded image returned by the image model.
type Image struct {
	MimeType string
	Data     []byte
}

// DataURL renders the image as a data: URL.
func (i Image) DataURL() string {
	return "data:" + i.MimeType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// EditImage sends an image and an instruction to the image model and returns
// the first image in the reply. An empty mimeType is sniffed from the bytes.
func (s *Service) EditImage(ctx context.Context, image []byte, mimeType, prompt string) (out Image, err error) {
	ctx, span := s.start(ctx, observability.SpanResearchImage)
	defer func() { finish(span, err) }()

	if len(image) == 0 || strings.TrimSpace(prompt) == "" {
		return Image{}, fmt.Errorf("%w: image and prompt are required", ErrImageEditFailed)
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	resp, err := s.provider.SendMessage(ctx, ai.ChatRequest{
		Model:            s.models.Image,
		Messages:         []ai.Message{ai.NewImageMessage(mimeType, base64.StdEncoding.EncodeToString(image), prompt)},
		GenerationConfig: &ai.GenerationConfig{ResponseModalities: []string{ai.ModalityImage}},
	})
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrImageEditFailed, err)
	}

	for _, img := range resp.Images {
		if img.Data == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return Image{}, fmt.Errorf("%w: decode image: %w", ErrImageEditFailed, err)
		}
		return Image{MimeType: img.MimeType, Data: data}, nil
	}
	return Image{}, fmt.Errorf("%w: %w", ErrImageEditFailed, ErrNoImage)
}
