// File: services/intelligence/gemini.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"attendai/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const extractionPrompt = `Extract every class from this timetable image.
Return one entry per weekly class with the full English weekday name,
start and end times formatted like "9:00 AM", the subject, and the room if shown.`

// GeminiExtractor asks a Gemini model for a JSON schedule.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewGeminiExtractor builds the extractor. Without an API key the extractor
// is still returned but every call fails with ErrMissingCredentials.
func NewGeminiExtractor(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiExtractor, error) {
	g := &GeminiExtractor{logger: logger}
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, timetable extraction disabled")
		return g, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = scheduleSchema()
	model.SetTemperature(0)

	g.client = client
	g.model = model
	return g, nil
}

func scheduleSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"day":       str("Full weekday name, e.g. Monday"),
				"startTime": str("Start time, e.g. 9:00 AM"),
				"endTime":   str("End time, e.g. 10:30 AM"),
				"subject":   str("Course or subject name"),
				"room":      str("Room or location, if shown"),
			},
			Required: []string{"day", "startTime", "endTime", "subject"},
		},
	}
}

func (g *GeminiExtractor) Extract(ctx context.Context, img Image) ([]models.ScheduleItem, error) {
	if g.model == nil {
		return nil, ErrMissingCredentials
	}

	format := strings.TrimPrefix(img.MIMEType, "image/")
	resp, err := g.model.GenerateContent(ctx, genai.ImageData(format, img.Data), genai.Text(extractionPrompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyExtraction
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	items, dropped, err := ParseSchedule(sb.String())
	if err != nil {
		g.logger.Warn("Unusable extraction response", zap.Error(err), zap.String("image", img.Name))
		return nil, err
	}
	if dropped > 0 {
		g.logger.Info("Dropped incomplete extracted classes", zap.Int("dropped", dropped), zap.Int("kept", len(items)))
	}
	return items, nil
}

// Close releases the underlying client.
func (g *GeminiExtractor) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
