package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/podscope/pkg/config"
)

// ErrRequestFailed returned when the LLM call itself fails - timeout,
// non-2xx response or an unusable envelope. Distinct from a malformed
// model answer, which degrades to a fallback result instead.
var ErrRequestFailed = errors.New("llm request failed")

// fallbackSummaryChars caps how much raw response text the degraded
// record keeps as its summary
const fallbackSummaryChars = 800

// neutralImportanceScore used when the model answer can't be parsed
const neutralImportanceScore = 5

// modelPrices holds static per-model prices in USD per million tokens
var modelPrices = map[string]struct{ input, output float64 }{
	"gpt-4o":        {2.5, 10.0},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-4.1":       {2.0, 8.0},
	"gpt-4.1-mini":  {0.4, 1.6},
	"o3-mini":       {1.1, 4.4},
	"deepseek-chat": {0.27, 1.1},
}

// Extractor turns episode text into a structured intelligence record
// via a single LLM call
type Extractor struct {
	client *openai.Client
	config config.LLMConfig
}

// Request contains all parameters for one extraction call
type Request struct {
	Text         string
	SourceName   string
	EpisodeTitle string
	FocusTag     string
	Emphasis     string
}

// Result is the structured extraction output. ParsingError marks a degraded
// record built from an unparseable model answer - callers should not trust
// ImportanceScore on degraded records.
type Result struct {
	Headline              string   `json:"headline_takeaway"`
	ExecutiveSummary      string   `json:"executive_summary"`
	BottomLine            string   `json:"bottom_line"`
	GuestExpertise        string   `json:"guest_expertise"`
	StrategicImplications []string `json:"strategic_implications"`
	RiskFactors           []string `json:"risk_factors"`
	QuantifiedImpact      []string `json:"quantified_impact"`
	TechnicalDevelopments []string `json:"technical_developments"`
	Predictions           []string `json:"predictions"`
	MarketDynamics        []string `json:"market_dynamics"`
	CompaniesMentioned    []string `json:"companies_mentioned"`
	KeyPeople             []string `json:"key_people"`
	ActionableInsights    []string `json:"actionable_insights"`
	ImportanceScore       int      `json:"importance_score"`
	ParsingError          bool     `json:"-"`

	CostUSD float64 `json:"-"`
	Seconds float64 `json:"-"`
	ModelID string  `json:"-"`
}

// NewExtractor creates a new intelligence extractor
func NewExtractor(cfg config.LLMConfig) *Extractor {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Extractor{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Extract runs one extraction call. A malformed model answer produces a
// flagged fallback result, never an error - only the call itself failing
// surfaces as ErrRequestFailed.
func (e *Extractor) Extract(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	prompt := buildExtractionPrompt(req.Text, req.SourceName, req.EpisodeTitle, req.FocusTag, req.Emphasis)

	log.Printf("[INFO] extracting intelligence for %q", req.EpisodeTitle)

	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrRequestFailed)
	}

	result := e.parseResponse(resp.Choices[0].Message.Content, req.EpisodeTitle)
	result.CostUSD = e.calculateCost(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	result.Seconds = time.Since(start).Seconds()
	result.ModelID = e.config.Model

	log.Printf("[INFO] extraction complete for %q, cost $%.4f, took %.2fs",
		req.EpisodeTitle, result.CostUSD, result.Seconds)

	return result, nil
}

// parseResponse decodes the model answer, tolerating a markdown code fence.
// An undecodable answer degrades to a fallback record that preserves the
// raw text instead of losing the extraction.
func (e *Extractor) parseResponse(content, episodeTitle string) *Result {
	cleaned := stripCodeFence(content)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		log.Printf("[WARN] failed to parse extraction response for %q, using fallback: %v", episodeTitle, err)

		summary := content
		if len(summary) > fallbackSummaryChars {
			summary = summary[:fallbackSummaryChars]
		}

		return &Result{
			Headline:              fmt.Sprintf("[Parsing Error] %s", episodeTitle),
			ExecutiveSummary:      summary,
			StrategicImplications: []string{},
			RiskFactors:           []string{},
			QuantifiedImpact:      []string{},
			TechnicalDevelopments: []string{},
			Predictions:           []string{},
			MarketDynamics:        []string{},
			CompaniesMentioned:    []string{},
			KeyPeople:             []string{},
			ActionableInsights:    []string{},
			ImportanceScore:       neutralImportanceScore,
			ParsingError:          true,
		}
	}

	// missing fields decode to zero values, which is the intended backfill
	return &result
}

// calculateCost computes the call cost in USD, rounded to 6 decimal places
func (e *Extractor) calculateCost(inputTokens, outputTokens int) float64 {
	inputPrice, outputPrice := e.prices()
	cost := float64(inputTokens)/1e6*inputPrice + float64(outputTokens)/1e6*outputPrice
	return math.Round(cost*1e6) / 1e6
}

// prices returns per-million-token prices for the configured model,
// config overrides win over the static table
func (e *Extractor) prices() (input, output float64) {
	if e.config.InputPricePerM > 0 || e.config.OutputPricePerM > 0 {
		return e.config.InputPricePerM, e.config.OutputPricePerM
	}
	if p, ok := modelPrices[e.config.Model]; ok {
		return p.input, p.output
	}
	return 0, 0
}
