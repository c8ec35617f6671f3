package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/driveline/internal/domain"
)

// openRouterRanker calls OpenRouter's OpenAI-compatible chat completions
// endpoint. Independent of the Gemini adapter; neither knows the other exists.
type openRouterRanker struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOpenRouterRanker creates the secondary AI provider adapter.
func NewOpenRouterRanker(cfg Config, observer Observer) Ranker {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openRouterRanker{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

func (o *openRouterRanker) Name() string { return "openrouter" }

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat chatResponseFmt `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFmt struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *openRouterRanker) Rank(ctx context.Context, vehicles []domain.CandidateVehicle, needs domain.NeedsProfile) ([]domain.ScoredVehicle, error) {
	if o.cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("openrouter: %w", ErrMissingAPIKey)
	}

	start := time.Now()
	scored, err := o.rank(ctx, vehicles, needs)
	o.observer.OnCallComplete(CallEvent{
		Provider:  o.Name(),
		Model:     o.cfg.OpenRouterModel,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return scored, err
}

func (o *openRouterRanker) rank(ctx context.Context, vehicles []domain.CandidateVehicle, needs domain.NeedsProfile) ([]domain.ScoredVehicle, error) {
	prompt, err := buildRankingPrompt(vehicles, needs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := chatRequest{
		Model: o.cfg.OpenRouterModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an automotive expert. Reply with JSON only."},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: chatResponseFmt{Type: "json_object"},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.OpenRouterEndpoint+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.cfg.OpenRouterAPIKey)

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode, truncate(respBody, 512))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrInvalidOutput)
	}

	doc, err := extractRankings(parsed.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return toScoredVehicles(doc, vehicles)
}
