package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service turns an uploaded itinerary document into a structured trip
// request.
type Service interface {
	Extract(ctx context.Context, path string) (map[string]any, error)
}

// TextGenerator is the slice of the Gemini client the extractor needs.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

const extractionPromptTemplate = "You have been given a Itinerary to analyse.\n" +
	"Your job is to produce a final outcome in JSON format.\n" +
	"The itinerary text is below\n" +
	"------------\n" +
	"%s\n" +
	"------------\n" +
	"Given the context, provide the information in this exact JSON format:\n" +
	"{\n" +
	"    \"name\": \"\",\n" +
	"    \"numberOfPeople\": <extract number of tourists>,\n" +
	"    \"daysOfVisit\": <Number of Days that the tour is of. This can be calculated by counting the number of days between the start date and the end date: >,\n" +
	"    \"placesToVisit\": [<list of The Places the tour will go to duing its entirety. All the tourists spots mentioned: >],\n" +
	"    \"dateOfVisit\": \"<start date of the tour in DD-MM-YYYY format>\",\n" +
	"    \"currentStay\": \"<name of the first/arrival hotel>\"\n" +
	"}\n" +
	"Ensure the output is valid JSON. Remove any explanatory text."

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger    *slog.Logger
	generator TextGenerator
}

// NewService creates a new extraction service instance.
func NewService(generator TextGenerator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
	}
}

// Extract reads the document's text and asks the model to distill it into
// the trip request shape. Supported formats are .pdf and .docx.
func (s *ServiceImpl) Extract(ctx context.Context, path string) (map[string]any, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDFText(path)
	case ".docx":
		text, err = extractDocxText(path)
	default:
		return nil, fmt.Errorf("%w: unsupported file format, please provide a .docx or .pdf file", types.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrValidation, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: document contains no extractable text", types.ErrValidation)
	}

	raw, err := s.generator.GenerateContent(ctx, fmt.Sprintf(extractionPromptTemplate, text), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGeneration, err)
	}

	var extracted map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &extracted); err != nil {
		s.logger.ErrorContext(ctx, "Model returned unparseable extraction", slog.Any("error", err))
		return nil, fmt.Errorf("%w: model returned invalid JSON", types.ErrGeneration)
	}

	s.logger.InfoContext(ctx, "Itinerary document extracted", slog.String("file", filepath.Base(path)))
	return extracted, nil
}

// stripCodeFences removes a surrounding markdown code fence if the model
// added one despite being told not to.
func stripCodeFences(raw string) string {
	out := strings.TrimSpace(raw)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
