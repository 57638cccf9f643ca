// Package insights wraps the hosted Gemini collaborator: a structured
// insights request over a simplified projection of the dataset, and a
// free-form assistant question over the full dataset. Failures here are
// isolated from record state; callers surface them to the UI and move on.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/volttrack/mis_backend/models"
	"github.com/volttrack/mis_backend/utils"
)

const DefaultModel = "gemini-3-flash-preview"

// CollaboratorError marks a failed or unparsable text-generation call. The
// caller gets either a complete response or this error, never partial data.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return "insights: " + e.Op + ": " + e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Insights is the structured analysis response.
type Insights struct {
	Summary       string     `json:"summary"`
	Risks         []string   `json:"risks"`
	Opportunities []string   `json:"opportunities"`
	KeyMetrics    KeyMetrics `json:"keyMetrics"`
}

type KeyMetrics struct {
	TotalValueExposure string `json:"totalValueExposure"`
	MostActiveCustomer string `json:"mostActiveCustomer"`
}

// simplified per-record projection sent with the insights request; keeps the
// prompt small on large datasets
type recordDigest struct {
	Customer         string  `json:"customer"`
	Project          string  `json:"project"`
	Rating           float64 `json:"rating"`
	Status           string  `json:"status"`
	PBGAmount        string  `json:"pbgAmount"`
	CommissioningDue string  `json:"commissioningDue"`
	WarrantyEnd      string  `json:"warrantyEnd"`
}

type Service struct {
	client *genai.Client
	model  string
}

// NewService builds the Gemini client. The API key comes from
// GEMINI_API_KEY; the model can be overridden with GEMINI_MODEL.
func NewService(ctx context.Context) (*Service, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = DefaultModel
	}

	return &Service{client: client, model: model}, nil
}

// MisInsights asks for the structured dashboard analysis. JSON response mode
// is requested from the model; anything that does not decode into Insights
// is a CollaboratorError.
func (s *Service) MisInsights(ctx context.Context, records []*models.TransformerRecord) (*Insights, error) {
	digests := make([]recordDigest, 0, len(records))
	for _, rec := range records {
		digests = append(digests, recordDigest{
			Customer:         rec.CustomerName,
			Project:          rec.Project,
			Rating:           rec.RatingKVA,
			Status:           string(rec.Status),
			PBGAmount:        rec.PBGAmount.String(),
			CommissioningDue: rec.CommissioningDueDate,
			WarrantyEnd:      rec.WarrantyDateDispatch,
		})
	}

	data, err := json.Marshal(digests)
	if err != nil {
		return nil, &CollaboratorError{Op: "marshal data", Err: err}
	}

	prompt := insightsPrompt(string(data))
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, &CollaboratorError{Op: "generate insights", Err: err}
	}

	return decodeInsights([]byte(resp.Text()))
}

// Ask answers a free-form question against the full record array. The
// answer is plain text; failures surface as CollaboratorError with no retry.
func (s *Service) Ask(ctx context.Context, question string, records []*models.TransformerRecord) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", &CollaboratorError{Op: "marshal data", Err: err}
	}

	prompt := assistantPrompt(string(data), question)
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &CollaboratorError{Op: "ask assistant", Err: err}
	}

	answer := resp.Text()
	if strings.TrimSpace(answer) == "" {
		return "", &CollaboratorError{Op: "ask assistant", Err: fmt.Errorf("empty response")}
	}
	return answer, nil
}

func decodeInsights(payload []byte) (*Insights, error) {
	var out Insights
	if err := utils.UnmarshalFromJSON(payload, &out); err != nil {
		return nil, &CollaboratorError{Op: "decode insights", Err: err}
	}
	if out.Summary == "" {
		return nil, &CollaboratorError{Op: "decode insights", Err: fmt.Errorf("response missing summary")}
	}
	return &out, nil
}

func insightsPrompt(data string) string {
	return `Analyze the following MIS data for Transformer dispatches.
Provide a JSON response with the following structure:
{
  "summary": "A brief 2-sentence summary of the current status.",
  "risks": ["Risk 1", "Risk 2"],
  "opportunities": ["Opportunity 1", "Opportunity 2"],
  "keyMetrics": {
    "totalValueExposure": "Estimated calculation based on PBG or general context",
    "mostActiveCustomer": "Name of customer"
  }
}

Data: ` + data
}

func assistantPrompt(data, question string) string {
	return `You are an intelligent assistant for a Transformer Manufacturing MIS system.
Answer the user's question based strictly on the provided data below.
Keep the answer concise and professional.

Data: ` + data + `

User Question: ` + question
}
