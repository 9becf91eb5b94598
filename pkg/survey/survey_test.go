package survey

import (
	"testing"
)

func TestQuestionsAreWellFormed(t *testing.T) {
	qs := Questions()
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	for _, q := range qs {
		if q.ID == "" || q.Text == "" {
			t.Errorf("question %+v missing id or text", q)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %s has %d options, want 4", q.ID, len(q.Options))
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		answer     string
		wantErr    bool
	}{
		{name: "valid focus answer", questionID: "focus_duration", answer: "c", wantErr: false},
		{name: "valid peak answer", questionID: "peak_time", answer: "a", wantErr: false},
		{name: "answer outside options", questionID: "focus_duration", answer: "e", wantErr: true},
		{name: "uppercase key rejected", questionID: "peak_time", answer: "A", wantErr: true},
		{name: "unknown question", questionID: "favorite_color", answer: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.questionID, tt.answer)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q, %q) error = %v, wantErr %v", tt.questionID, tt.answer, err, tt.wantErr)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		responses  map[string]string
		wantHours  float64
		wantWindow string
	}{
		{
			name:       "no answers keep defaults",
			responses:  map[string]string{},
			wantHours:  6.0,
			wantWindow: "17:00",
		},
		{
			name:       "short focus lowers capacity",
			responses:  map[string]string{"focus_duration": "a"},
			wantHours:  4.0,
			wantWindow: "17:00",
		},
		{
			name:       "long focus raises capacity",
			responses:  map[string]string{"focus_duration": "d", "peak_time": "a"},
			wantHours:  8.0,
			wantWindow: "06:00",
		},
		{
			name:       "night owl",
			responses:  map[string]string{"peak_time": "d"},
			wantHours:  6.0,
			wantWindow: "21:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Score(tt.responses)
			if profile.MaxDailyDeepHours != tt.wantHours {
				t.Errorf("MaxDailyDeepHours = %v, want %v", profile.MaxDailyDeepHours, tt.wantHours)
			}
			if len(profile.PeakWindows) != 1 || profile.PeakWindows[0] != tt.wantWindow {
				t.Errorf("PeakWindows = %v, want [%s]", profile.PeakWindows, tt.wantWindow)
			}
		})
	}
}
