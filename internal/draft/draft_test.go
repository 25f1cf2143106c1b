package draft

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/llmprovider"
	"personal-task-management/pkg/log"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
	last  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: f.reply}}}}, nil
}

var testNow = time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC) // Monday

func newTestAdapter(t *testing.T, gen Generator) *Adapter {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return New(log.NewNop(), gen, datemath.FixedClock(testNow), parser)
}

func TestGenerateBlankPromptSkipsProvider(t *testing.T) {
	gen := &fakeGenerator{reply: `[{"content":"x"}]`}
	a := newTestAdapter(t, gen)

	for _, p := range []string{"", "   ", "\n\t"} {
		got := a.Generate(context.Background(), p)
		if got == nil || len(got) != 0 {
			t.Errorf("Generate(%q) = %#v, want empty slice", p, got)
		}
	}
	if gen.calls != 0 {
		t.Errorf("provider called %d times", gen.calls)
	}
}

func TestGenerateParsesReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{name: "plain array", reply: `[{"content":"Book venue"},{"content":"Send invites"}]`, want: []string{"Book venue", "Send invites"}},
		{name: "fenced", reply: "```json\n[{\"content\":\"Book venue\"}]\n```", want: []string{"Book venue"}},
		{name: "prose around", reply: "Sure! Here you go:\n[{\"content\":\"Book venue\"}]\nGood luck.", want: []string{"Book venue"}},
		{name: "empty contents dropped", reply: `[{"content":"  "},{"content":" Call Bob "}]`, want: []string{"Call Bob"}},
		{name: "invalid json", reply: `[{"content":`},
		{name: "not an array", reply: `{"content":"x"}`},
		{name: "wrapped object", reply: `{"tasks":[{"content":"Book venue"}]}`, want: []string{"Book venue"}},
		{name: "whitespace", reply: "   "},
		{name: "empty array", reply: `[]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAdapter(t, &fakeGenerator{reply: tc.reply})
			got := a.Generate(context.Background(), "plan a party")
			if len(got) != len(tc.want) {
				t.Fatalf("got %d candidates %+v, want %v", len(got), got, tc.want)
			}
			for i, c := range got {
				if c.Content != tc.want[i] {
					t.Errorf("candidate %d = %q, want %q", i, c.Content, tc.want[i])
				}
				if c.Completed != nil {
					t.Errorf("candidate %d has Completed set", i)
				}
			}
		})
	}
}

func TestGenerateProviderError(t *testing.T) {
	a := newTestAdapter(t, &fakeGenerator{err: errors.New("quota")})
	if got := a.Generate(context.Background(), "x"); len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}

func TestGenerateDueDates(t *testing.T) {
	reply := `[
		{"content":"a","due_date":"2024-06-12T09:00:00+07:00"},
		{"content":"b","due_date":"2024-06-14"},
		{"content":"c","due_date":"tomorrow"},
		{"content":"d","due_date":"someday"},
		{"content":"e"}
	]`
	a := newTestAdapter(t, &fakeGenerator{reply: reply})
	got := a.Generate(context.Background(), "x")
	if len(got) != 5 {
		t.Fatalf("got %d candidates", len(got))
	}

	want := []*time.Time{
		ptr(time.Date(2024, 6, 12, 2, 0, 0, 0, time.UTC)),
		ptr(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)),
		ptr(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)),
		nil,
		nil,
	}
	for i, w := range want {
		d := got[i].DueDate
		switch {
		case w == nil && d != nil:
			t.Errorf("%s: due = %v, want none", got[i].Content, *d)
		case w != nil && (d == nil || !d.Equal(*w)):
			t.Errorf("%s: due = %v, want %v", got[i].Content, d, *w)
		}
	}
}

func TestGenerateRequestShape(t *testing.T) {
	gen := &fakeGenerator{reply: `[]`}
	newTestAdapter(t, gen).Generate(context.Background(), "  renovate kitchen ")

	if !gen.last.JSON {
		t.Error("request does not ask for JSON")
	}
	user := gen.last.Messages[0].Parts[0].Text
	if !strings.Contains(user, "2024-06-10 (Monday)") || !strings.Contains(user, "renovate kitchen") {
		t.Errorf("user prompt = %q", user)
	}
}

func TestGenerateCapsCandidates(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < maxCandidates+5; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"content":"t"}`)
	}
	b.WriteString("]")

	got := newTestAdapter(t, &fakeGenerator{reply: b.String()}).Generate(context.Background(), "x")
	if len(got) != maxCandidates {
		t.Errorf("got %d, want %d", len(got), maxCandidates)
	}
}

func TestSanitizeJSON(t *testing.T) {
	tests := map[string]string{
		"```\n[1]\n```":   "[1]",
		"```JSON [2] ```": "[2]",
		"noise [3] trail": "[3]",
		"no json here":    "no json here",
		"] backwards [":   "] backwards [",
		"  {\"a\":1}  ":   `{"a":1}`,
	}
	for in, want := range tests {
		if got := sanitizeJSON(in); got != want {
			t.Errorf("sanitizeJSON(%q) = %q, want %q", in, got, want)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestGenerateChecklistFallback(t *testing.T) {
	reply := "Here is a plan:\n\n- [ ] Book venue (due: 2024-06-12)\n- [x] Pick a theme\n  * [ ] Send invites (due tomorrow)\n- plain bullet\n"
	got := newTestAdapter(t, &fakeGenerator{reply: reply}).Generate(context.Background(), "plan a party")
	if len(got) != 3 {
		t.Fatalf("got %d candidates %+v, want 3", len(got), got)
	}

	if got[0].Content != "Book venue" || got[0].DueDate == nil || !got[0].DueDate.Equal(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first = %+v", got[0])
	}
	if got[0].Completed != nil {
		t.Error("unchecked box should leave Completed unset")
	}
	if got[1].Content != "Pick a theme" || got[1].Completed == nil || !*got[1].Completed {
		t.Errorf("second = %+v", got[1])
	}
	if got[2].Content != "Send invites" || got[2].DueDate == nil || !got[2].DueDate.Equal(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("third = %+v", got[2])
	}
}

func TestParseChecklist(t *testing.T) {
	items := parseChecklist("- [X] Done thing\n- [ ]   \nnot a box\n* [ ] Other (due:friday)")
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if !items[0].checked || items[0].Content != "Done thing" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].checked || items[1].Content != "Other" || items[1].DueDate != "friday" {
		t.Errorf("items[1] = %+v", items[1])
	}
}
