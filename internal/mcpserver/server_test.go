package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"wellnesstips/internal/tips"
)

var fallback = tips.Fallback()

func newTestServer() *Server {
	return New("WellnessTipsServer", tips.New(map[string][]string{
		"happy": {"Smile more", "Go outside"},
		"sad":   {"Call a friend"},
	}))
}

func callTool(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = ToolName
	req.Params.Arguments = args

	res, err := s.handleGetTips(context.Background(), req)
	if err != nil {
		t.Fatalf("handleGetTips() error = %v", err)
	}
	return res
}

func textOf(t *testing.T, res *mcp.CallToolResult) []string {
	t.Helper()
	var out []string
	for _, c := range res.Content {
		tc, ok := c.(mcp.TextContent)
		if !ok {
			t.Fatalf("content %T is not text", c)
		}
		out = append(out, tc.Text)
	}
	return out
}

func TestHandleGetTips(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name     string
		mood     string
		expected []string
	}{
		{"known mood", "happy", []string{"Smile more", "Go outside"}},
		{"mixed case with spaces", " Happy ", []string{"Smile more", "Go outside"}},
		{"upper case", "SAD", []string{"Call a friend"}},
		{"unknown mood", "bored", fallback},
		{"empty mood", "", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, s, map[string]any{"mood": tt.mood})
			if res.IsError {
				t.Fatalf("unexpected tool error: %v", textOf(t, res))
			}
			if got := textOf(t, res); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("content = %v, want %v", got, tt.expected)
			}
			structured, ok := res.StructuredContent.(map[string]any)
			if !ok {
				t.Fatalf("structured content %T is not a map", res.StructuredContent)
			}
			if got := structured["result"]; !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("structured result = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHandleGetTips_MissingMood(t *testing.T) {
	res := callTool(t, newTestServer(), map[string]any{})
	if !res.IsError {
		t.Error("expected tool error for missing mood")
	}
}

func TestHandleReadMoods(t *testing.T) {
	s := newTestServer()

	contents, err := s.handleReadMoods(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleReadMoods() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("content %T is not text", contents[0])
	}

	var moods []string
	if err := json.Unmarshal([]byte(text.Text), &moods); err != nil {
		t.Fatalf("unmarshal moods: %v", err)
	}
	if !reflect.DeepEqual(moods, []string{"happy", "sad"}) {
		t.Errorf("moods = %v, want [happy sad]", moods)
	}
}

// rpcResponse is the subset of a JSON-RPC response the tests inspect.
type rpcResponse struct {
	ID     int `json:"id"`
	Result struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		StructuredContent struct {
			Result []string `json:"result"`
		} `json:"structuredContent"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func handle(t *testing.T, s *Server, msg string) rpcResponse {
	t.Helper()
	out := s.MCP().HandleMessage(context.Background(), json.RawMessage(msg))
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var resp rpcResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestHandleMessage_ToolsList(t *testing.T) {
	resp := handle(t, newTestServer(), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if resp.Error != nil {
		t.Fatalf("tools/list error: %+v", resp.Error)
	}
	if len(resp.Result.Tools) != 1 || resp.Result.Tools[0].Name != ToolName {
		t.Errorf("tools = %+v, want only %s", resp.Result.Tools, ToolName)
	}
}

func TestHandleMessage_ToolsCall(t *testing.T) {
	resp := handle(t, newTestServer(),
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_wellness_tips","arguments":{"mood":"HAPPY"}}}`)
	if resp.Error != nil {
		t.Fatalf("tools/call error: %+v", resp.Error)
	}
	if resp.ID != 2 {
		t.Errorf("id = %d, want 2", resp.ID)
	}
	want := []string{"Smile more", "Go outside"}
	if got := resp.Result.StructuredContent.Result; !reflect.DeepEqual(got, want) {
		t.Errorf("structured result = %v, want %v", got, want)
	}
	if len(resp.Result.Content) != 2 || resp.Result.Content[0].Text != "Smile more" {
		t.Errorf("content = %+v", resp.Result.Content)
	}
}

func TestHTTPHandler_ToolsCall(t *testing.T) {
	ts := httptest.NewServer(newTestServer().HTTPHandler())
	defer ts.Close()

	body := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_wellness_tips","arguments":{"mood":"sad"}}}`
	req, err := http.NewRequest(http.MethodPost, ts.URL, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	httpResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer httpResp.Body.Close()

	data, _ := io.ReadAll(httpResp.Body)
	if httpResp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", httpResp.StatusCode, data)
	}

	var resp rpcResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal response %s: %v", data, err)
	}
	if got := resp.Result.StructuredContent.Result; !reflect.DeepEqual(got, []string{"Call a friend"}) {
		t.Errorf("structured result = %v, want [Call a friend]", got)
	}
}
