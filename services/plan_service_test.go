package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlanService(baseURL string) *PlanService {
	return &PlanService{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		apiKey:  "test-key",
		model:   "test-model",
	}
}

// fakeCompletion wraps text in the chat-completions response shape.
func fakeCompletion(text string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": text}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGeneratePlanSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fakeCompletion("Here is your plan:\n```json\n{\"mealTime\": \"Lunch\", \"totalCalories\": 620}\n```\nEnjoy!")))
	}))
	defer ts.Close()

	plan, raw, err := testPlanService(ts.URL).GeneratePlan("my prompt")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", plan["mealTime"])
	assert.Equal(t, float64(620), plan["totalCalories"])
	assert.Contains(t, raw, "Enjoy!")

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	msgs := gotBody["messages"].([]interface{})
	msg := msgs[0].(map[string]interface{})
	assert.Equal(t, "my prompt", msg["content"])
}

func TestGeneratePlanNoJSONObject(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fakeCompletion("Sorry, I cannot help with that.")))
	}))
	defer ts.Close()

	plan, raw, err := testPlanService(ts.URL).GeneratePlan("prompt")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrResponseUnparseable)
	assert.Equal(t, "Sorry, I cannot help with that.", raw)
}

func TestGeneratePlanMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fakeCompletion(`{"mealTime": "Lunch", "items": [}`)))
	}))
	defer ts.Close()

	plan, raw, err := testPlanService(ts.URL).GeneratePlan("prompt")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrResponseMalformed)
	assert.Contains(t, raw, "mealTime")
}

func TestGeneratePlanUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	}))
	defer ts.Close()

	_, _, err := testPlanService(ts.URL).GeneratePlan("prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestGeneratePlanMissingAPIKey(t *testing.T) {
	svc := testPlanService("http://unreachable.invalid")
	svc.apiKey = ""
	_, _, err := svc.GeneratePlan("prompt")
	assert.Error(t, err)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"a":1}`, `{"a":1}`, true},
		{"prose {\"a\":1} trailing", `{"a":1}`, true},
		{"nested {\"a\":{\"b\":2}} tail", `{"a":{"b":2}}`, true},
		{"no braces at all", "", false},
		{"only open {", "", false},
		{"} reversed {", "", false},
	}
	for _, tt := range tests {
		got, ok := extractJSONObject(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
