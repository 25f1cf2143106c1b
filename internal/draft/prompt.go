package draft

import (
	"fmt"
	"time"
)

const systemPrompt = `You break a project goal into concrete, actionable tasks.

RULES:
1. Return ONLY a JSON array. No markdown, no explanation.
2. Each element is an object with:
   - "content": short imperative task description (required)
   - "due_date": "YYYY-MM-DD" when the goal implies a date, otherwise omit it
3. Return at most %d tasks, ordered by when they should be done.
4. Resolve relative dates ("tomorrow", "next friday") against the current date below.

EXAMPLE OUTPUT:
[
  {"content": "Book the venue", "due_date": "2026-03-02"},
  {"content": "Send invitations"}
]`

func buildSystemPrompt() string {
	return fmt.Sprintf(systemPrompt, maxCandidates)
}

func buildUserPrompt(goal string, now time.Time) string {
	return fmt.Sprintf("CURRENT DATE: %s (%s)\n\nGOAL:\n%s", now.Format(time.DateOnly), now.Weekday(), goal)
}
