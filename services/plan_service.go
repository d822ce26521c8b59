package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

// Failure taxonomy for plan generation. Transport and upstream-status
// errors are returned as plain wrapped errors; these two sentinels mark
// responses we received but could not turn into a plan.
var (
	ErrResponseUnparseable = errors.New("no JSON object in model response")
	ErrResponseMalformed   = errors.New("malformed JSON in model response")
)

// PlanService sends a single prompt to the Groq chat-completions API
// and extracts the plan object from the reply. One call per request,
// no retries, no streaming.
type PlanService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewPlanService() *PlanService {
	baseURL := os.Getenv("GROQ_API_URL")
	if baseURL == "" {
		baseURL = defaultGroqURL
	}
	return &PlanService{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: baseURL,
		apiKey:  os.Getenv("GROQ_API_KEY"),
		model:   "llama-3.3-70b-versatile",
	}
}

// GeneratePlan submits the prompt and parses the first JSON object in
// the completion. The raw completion text is returned alongside so
// callers can surface it when parsing fails; no schema validation is
// applied to the parsed object.
func (s *PlanService) GeneratePlan(prompt string) (map[string]interface{}, string, error) {
	if s.apiKey == "" {
		return nil, "", fmt.Errorf("GROQ_API_KEY not set")
	}

	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
		"max_tokens":  2048,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, "", fmt.Errorf("build groq request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("groq request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read groq response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the exact upstream error body for diagnostics.
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, "", fmt.Errorf("groq api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, "", fmt.Errorf("groq api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, "", fmt.Errorf("decode groq response error: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, "", fmt.Errorf("empty completion from groq")
	}

	text := out.Choices[0].Message.Content
	raw, ok := extractJSONObject(text)
	if !ok {
		return nil, text, ErrResponseUnparseable
	}

	var plan map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, text, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return plan, text, nil
}

// extractJSONObject takes the greedy span from the first '{' to the
// last '}'. Models often wrap the JSON in prose or markdown fences;
// this strips both.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
