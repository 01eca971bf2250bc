package web

import "encoding/json"

// A2A JSON-RPC 2.0 envelope. The agent speaks two methods: "message/send"
// for a single request and "execute" for a batch.

// JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeInvalidParams  = -32602
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
	CodeRateLimited    = -32000
)

// MessagePart is one part of an A2A message. Kind is "text", "data" or
// "file". Data may be an object of field overrides or a conversation
// history list, so it stays loosely typed.
type MessagePart struct {
	Kind    string `json:"kind"`
	Text    string `json:"text,omitempty"`
	Data    any    `json:"data,omitempty"`
	FileURL string `json:"file_url,omitempty"`
}

// A2AMessage is a single protocol message.
type A2AMessage struct {
	Kind      string        `json:"kind,omitempty"`
	Role      string        `json:"role"`
	Parts     []MessagePart `json:"parts"`
	MessageID string        `json:"messageId,omitempty"`
	TaskID    string        `json:"taskId,omitempty"`
	ContextID string        `json:"contextId,omitempty"`
}

// MessageParams carries the payload of a message/send call.
type MessageParams struct {
	Message A2AMessage `json:"message"`
}

// ExecuteParams carries the payload of an execute (batch) call.
type ExecuteParams struct {
	ContextID string       `json:"contextId,omitempty"`
	TaskID    string       `json:"taskId,omitempty"`
	Messages  []A2AMessage `json:"messages"`
}

// JSONRPCRequest is the outer request envelope. Params stays raw until the
// method is known.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// TaskStatus describes the state of the task after handling.
type TaskStatus struct {
	State   string      `json:"state"`
	Message *A2AMessage `json:"message,omitempty"`
}

// Artifact references a produced file.
type Artifact struct {
	Name  string        `json:"name"`
	Parts []MessagePart `json:"parts"`
}

// TaskResult is the result payload of a successful call.
type TaskResult struct {
	ID        string       `json:"id"`
	ContextID string       `json:"contextId,omitempty"`
	Kind      string       `json:"kind"`
	Status    TaskStatus   `json:"status"`
	Artifacts []Artifact   `json:"artifacts"`
	History   []A2AMessage `json:"history"`
}

// JSONRPCError is the error object of a failed call.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSONRPCResponse is the outer response envelope.
type JSONRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Result  *TaskResult   `json:"result,omitempty"`
	Error   *JSONRPCError `json:"error,omitempty"`
}

// errorResponse builds a failed envelope.
func errorResponse(id string, code int, message string) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	}
}

// resultResponse builds a successful envelope.
func resultResponse(id string, result *TaskResult) JSONRPCResponse {
	return JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result}
}
