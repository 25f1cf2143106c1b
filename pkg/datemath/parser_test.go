package datemath_test

import (
	"testing"
	"time"

	"personal-task-management/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		phrase  string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", phrase: "today", want: startOfBase},
		{name: "Tomorrow mixed case", phrase: "  Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", phrase: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", phrase: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", phrase: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", phrase: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", phrase: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Wednesday (from Wed) is a week out", phrase: "wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Invalid duration", phrase: "in a few days", wantErr: true},
		{name: "Unknown phrase", phrase: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.phrase, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	hcm, _ := time.LoadLocation("Asia/Ho_Chi_Minh")

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC3339 keeps offset", in: "2024-06-12T09:00:00Z", want: time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)},
		{name: "date only is local midnight", in: " 2024-06-12 ", want: time.Date(2024, 6, 12, 0, 0, 0, 0, hcm)},
		{name: "garbage", in: "next week-ish", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseDate(tt.in, hcm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAny(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	got, err := parser.ParseAny("2024-05-09", base)
	if err != nil || !got.Equal(time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseAny(date) = %v, %v", got, err)
	}
	got, err = parser.ParseAny("tomorrow", base)
	if err != nil || !got.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseAny(tomorrow) = %v, %v", got, err)
	}
}
