package web

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tweetshot/internal/domain"
	"tweetshot/internal/usecases"
	"tweetshot/pkg/log"
)

// Handlers contains the HTTP handlers for the agent.
type Handlers struct {
	generate  *usecases.GenerateTweetUseCase
	getImage  *usecases.GetImageUseCase
	agentName string
	agentURL  string
}

// NewHandlers creates a new Handlers instance. agentURL is the externally
// reachable base URL used to build image links.
func NewHandlers(generate *usecases.GenerateTweetUseCase, getImage *usecases.GetImageUseCase, agentName, agentURL string) *Handlers {
	return &Handlers{
		generate:  generate,
		getImage:  getImage,
		agentName: agentName,
		agentURL:  strings.TrimSuffix(agentURL, "/"),
	}
}

// AgentCard answers the health/identity check.
func (h *Handlers) AgentCard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"agent_name": h.agentName,
		"status":     "online",
		"protocol":   "a2a-jsonrpc-2.0",
	})
}

// Image serves a generated PNG by ID.
func (h *Handlers) Image(c *fiber.Ctx) error {
	id := c.Params("id")

	png, err := h.getImage.Execute(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "image not found"})
		}
		log.GlobalErrorCtx(c.UserContext(), "image lookup failed", "image_id", id, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// A2A is the main JSON-RPC 2.0 endpoint.
func (h *Handlers) A2A(c *fiber.Ctx) error {
	var req JSONRPCRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.JSON(errorResponse("", CodeParseError, "parse error: "+err.Error()))
	}

	ctx := c.UserContext()

	switch req.Method {
	case "message/send":
		var params MessageParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return c.JSON(errorResponse(req.ID, CodeInvalidParams, "invalid params: "+err.Error()))
		}

		result, err := h.handleMessageSend(c, params)
		if err != nil {
			log.GlobalErrorCtx(ctx, "message/send failed", "error", err)
			return c.JSON(errorResponse(req.ID, CodeInternalError, "internal error: "+err.Error()))
		}
		return c.JSON(resultResponse(req.ID, result))

	case "execute":
		var params ExecuteParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return c.JSON(errorResponse(req.ID, CodeInvalidParams, "invalid params: "+err.Error()))
		}

		result, err := h.handleExecute(c, params)
		if err != nil {
			log.GlobalErrorCtx(ctx, "execute failed", "error", err)
			return c.JSON(errorResponse(req.ID, CodeInternalError, "internal error: "+err.Error()))
		}
		return c.JSON(resultResponse(req.ID, result))

	default:
		return c.JSON(errorResponse(req.ID, CodeMethodNotFound, "method not found: "+req.Method))
	}
}

// handleMessageSend renders a single tweet from one A2A message.
func (h *Handlers) handleMessageSend(c *fiber.Ctx, params MessageParams) (*TaskResult, error) {
	message := params.Message

	contextID := message.ContextID
	if contextID == "" {
		contextID = uuid.New().String()
	}
	taskID := message.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	text, overrides := collectRequest(message.Parts)

	generated, err := h.generate.Execute(c.UserContext(), text, overrides)
	if err != nil {
		return nil, err
	}

	response := h.responseMessage(generated, taskID, contextID)

	return &TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status:    TaskStatus{State: "completed", Message: &response},
		Artifacts: []Artifact{h.artifact(generated)},
		History:   []A2AMessage{},
	}, nil
}

// handleExecute renders one tweet per batch message. Messages with no
// usable parts are skipped, not failed.
func (h *Handlers) handleExecute(c *fiber.Ctx, params ExecuteParams) (*TaskResult, error) {
	contextID := params.ContextID
	if contextID == "" {
		contextID = uuid.New().String()
	}
	taskID := params.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	artifacts := []Artifact{}
	history := []A2AMessage{}
	var lastMessage *A2AMessage

	for _, message := range params.Messages {
		text, overrides := collectRequest(message.Parts)
		if text == "" && len(overrides) == 0 {
			continue
		}

		generated, err := h.generate.Execute(c.UserContext(), text, overrides)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, h.artifact(generated))
		response := h.responseMessage(generated, taskID, contextID)
		history = append(history, response)
		lastMessage = &response
	}

	return &TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status:    TaskStatus{State: "completed", Message: lastMessage},
		Artifacts: artifacts,
		History:   history,
	}, nil
}

// imageURL builds the externally reachable URL for a generated image.
func (h *Handlers) imageURL(id string) string {
	return h.agentURL + "/image/" + id
}

// responseMessage builds the agent reply referencing the generated image.
func (h *Handlers) responseMessage(generated *domain.GeneratedImage, taskID, contextID string) A2AMessage {
	return A2AMessage{
		Kind: "message",
		Role: "agent",
		Parts: []MessagePart{
			{Kind: "text", Text: "Generated Twitter screenshot for @" + generated.Description.AuthorHandle},
			{Kind: "file", FileURL: h.imageURL(generated.ID)},
		},
		MessageID: uuid.New().String(),
		TaskID:    taskID,
		ContextID: contextID,
	}
}

// artifact builds the artifact entry for a generated image.
func (h *Handlers) artifact(generated *domain.GeneratedImage) Artifact {
	return Artifact{
		Name:  "twitter_screenshot_" + generated.Description.AuthorHandle + ".png",
		Parts: []MessagePart{{Kind: "file", FileURL: h.imageURL(generated.ID)}},
	}
}

// collectRequest walks message parts and returns the request text plus any
// structured field overrides. HTML-looking text parts are skipped; data
// lists are treated as conversation history, newest usable entry first.
func collectRequest(parts []MessagePart) (string, map[string]any) {
	text := ""
	overrides := map[string]any{}

	for _, part := range parts {
		switch part.Kind {
		case "text":
			if usableText(part.Text) {
				text = part.Text
			}
		case "data":
			switch data := part.Data.(type) {
			case map[string]any:
				for k, v := range data {
					overrides[k] = v
				}
			case []any:
				if t := latestUsableText(data); t != "" {
					text = t
				}
			}
		}
	}

	return text, overrides
}

// usableText rejects empty strings, HTML payloads, and agent progress chatter.
func usableText(t string) bool {
	trimmed := strings.TrimSpace(t)
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		return false
	}
	lower := strings.ToLower(trimmed)
	return !strings.Contains(lower, "generating") && !strings.Contains(lower, "creating")
}

// latestUsableText scans a history list backwards for the most recent
// text entry worth parsing.
func latestUsableText(history []any) string {
	for i := len(history) - 1; i >= 0; i-- {
		item, ok := history[i].(map[string]any)
		if !ok || item["kind"] != "text" {
			continue
		}
		t, _ := item["text"].(string)
		if usableText(t) {
			return t
		}
	}
	return ""
}
