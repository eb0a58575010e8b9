package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/jorfcheck/internal/model"
)

func TestOpenAIRecognize(t *testing.T) {
	var got openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "M. DUPONT JEAN NE LE 01/01/1990"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	engine, err := NewOpenAIEngine(model.OpenAIConfig{APIKey: "test-key", BaseURL: server.URL, Model: "vision-test"})
	require.NoError(t, err)

	text, err := engine.Recognize(context.Background(), Image{Page: 1, PNG: []byte{0x89, 'P', 'N', 'G'}})
	require.NoError(t, err)
	assert.Equal(t, "M. DUPONT JEAN NE LE 01/01/1990", text)

	assert.Equal(t, "vision-test", got.Model)
	require.Len(t, got.Messages, 1)
	require.Len(t, got.Messages[0].MultiContent, 2)
	image := got.Messages[0].MultiContent[1].ImageURL
	require.NotNil(t, image)
	assert.True(t, strings.HasPrefix(image.URL, "data:image/png;base64,"))
}

func TestOpenAINoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer server.Close()

	engine, err := NewOpenAIEngine(model.OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = engine.Recognize(context.Background(), Image{Page: 1})
	assert.ErrorContains(t, err, "no response")
}

func TestOpenAIServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	engine, err := NewOpenAIEngine(model.OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = engine.Recognize(context.Background(), Image{Page: 1})
	assert.Error(t, err)
}
