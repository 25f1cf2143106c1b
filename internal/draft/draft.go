package draft

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"personal-task-management/internal/task"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/llmprovider"
	"personal-task-management/pkg/log"
)

const (
	maxCandidates = 20
	temperature   = 0.2
	maxTokens     = 2048
)

// Generator produces text for a request. llmprovider.Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Adapter drafts tasks from a free-text goal.
type Adapter struct {
	l      log.Logger
	gen    Generator
	clock  datemath.Clock
	parser *datemath.Parser
}

// New creates an Adapter. parser resolves relative due dates and may be nil.
func New(l log.Logger, gen Generator, clock datemath.Clock, parser *datemath.Parser) *Adapter {
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return &Adapter{l: l, gen: gen, clock: clock, parser: parser}
}

// draftItem is one element of the model reply.
type draftItem struct {
	Content string `json:"content"`
	DueDate string `json:"due_date"`
}

// Generate returns the candidates drafted for prompt. Any failure yields an
// empty slice; the cause is only logged.
func (a *Adapter) Generate(ctx context.Context, prompt string) []task.Candidate {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" || a.gen == nil {
		return []task.Candidate{}
	}

	now := a.clock.Now()
	resp, err := a.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: buildSystemPrompt()}}},
		Messages:          []llmprovider.Message{llmprovider.UserText(buildUserPrompt(prompt, now))},
		Temperature:       temperature,
		MaxTokens:         maxTokens,
		JSON:              true,
	})
	if err != nil {
		a.l.Warnf(ctx, "draft.Generate GenerateContent: %v", err)
		return []task.Candidate{}
	}

	items, ok := decodeReply(resp.Text())
	if !ok {
		a.l.Warnf(ctx, "draft.Generate: reply is neither a JSON array nor a checklist")
		return []task.Candidate{}
	}

	candidates := make([]task.Candidate, 0, len(items))
	for _, it := range items {
		content := strings.TrimSpace(it.Content)
		if content == "" {
			continue
		}
		c := task.Candidate{
			Content: content,
			DueDate: a.parseDue(it.DueDate, now),
		}
		if it.checked {
			done := true
			c.Completed = &done
		}
		candidates = append(candidates, c)
		if len(candidates) == maxCandidates {
			break
		}
	}
	return candidates
}

// decodeReply reads the JSON array the prompt asks for, falling back to a
// markdown checklist. ok is false when neither shape is present.
func decodeReply(text string) ([]parsedItem, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, true
	}

	payload := []byte(sanitizeJSON(text))
	var items []draftItem
	if err := json.Unmarshal(payload, &items); err == nil {
		return fromJSON(items), true
	}
	// JSON-object modes wrap the array, e.g. {"tasks": [...]}.
	var wrapped struct {
		Tasks []draftItem `json:"tasks"`
	}
	if err := json.Unmarshal(payload, &wrapped); err == nil && wrapped.Tasks != nil {
		return fromJSON(wrapped.Tasks), true
	}

	if list := parseChecklist(text); len(list) > 0 {
		return list, true
	}
	return nil, false
}

func fromJSON(items []draftItem) []parsedItem {
	out := make([]parsedItem, len(items))
	for i, it := range items {
		out[i] = parsedItem{draftItem: it}
	}
	return out
}

// parseDue accepts RFC 3339, a bare date in the clock's location, or a
// relative phrase. Anything else means no due date.
func (a *Adapter) parseDue(s string, now time.Time) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := datemath.ParseDate(s, now.Location()); err == nil {
		return &t
	}
	if a.parser != nil {
		if t, err := a.parser.Parse(s, now); err == nil {
			return &t
		}
	}
	return nil
}
