package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lucas-asistente/pkg/openai"
)

func TestClient_CreateChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req openai.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command
		last := req.Messages[len(req.Messages)-1].Content
		if last == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if last == "call_tool" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"choices": [
					{
						"message": {
							"role": "assistant",
							"tool_calls": [
								{
									"id": "call_1",
									"type": "function",
									"function": {"name": "create_task", "arguments": "{\"titulo\":\"comprar leche\"}"}
								}
							]
						},
						"finish_reason": "tool_calls"
					}
				]
			}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"choices": [
				{
					"message": {"role": "assistant", "content": "mocked response string"},
					"finish_reason": "stop"
				}
			]
		}`))
	}))
	defer ts.Close()

	client := openai.NewClient("test-api-key").WithBaseURL(ts.URL)

	t.Run("success flow", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: openai.RoleUser, Content: "Hola"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "mocked response string" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("tool call flow", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: openai.RoleUser, Content: "call_tool"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		calls := resp.Choices[0].Message.ToolCalls
		if len(calls) != 1 || calls[0].Function.Name != "create_task" || calls[0].ID != "call_1" {
			t.Errorf("unexpected tool calls: %+v", calls)
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: openai.RoleUser, Content: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
		if !strings.Contains(err.Error(), "openai API error 500") {
			t.Errorf("unexpected error text: %v", err)
		}
	})
}

func TestClient_Model(t *testing.T) {
	client := openai.NewClient("k")
	if client.Model() != openai.DefaultModel {
		t.Errorf("default model = %q", client.Model())
	}
	if client.WithModel("gpt-4o").Model() != "gpt-4o" {
		t.Errorf("WithModel override failed")
	}
}
