package analysis

import (
	"reflect"
	"testing"
)

func TestLevelFromStatus(t *testing.T) {
	cases := []struct {
		status string
		want   RiskLevel
	}{
		{"High Risk", RiskDanger},
		{"Low Risk", RiskSuspicious},
		{"Safe", RiskSafe},
		{"", RiskSafe},
		{"high risk", RiskSafe},
		{"Unknown", RiskSafe},
	}
	for _, c := range cases {
		if got := LevelFromStatus(c.status); got != c.want {
			t.Errorf("LevelFromStatus(%q) = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestNormalizeScenario(t *testing.T) {
	v := RawVerdict{
		Status:   "High Risk",
		Score:    92,
		Keywords: []string{"password", "urgent"},
		Advice:   "Requests sensitive data",
	}
	got := Normalize(v)
	want := Result{
		RiskLevel:   RiskDanger,
		Score:       92,
		Highlights:  []string{"password", "urgent"},
		Explanation: []string{"Requests sensitive data", `Triggers found: "password, urgent"`},
		Actions:     []string{"Do not respond", "Block sender", "Report as phishing"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %+v\nwant %+v", got, want)
	}
}

func TestNormalizeScorePassThrough(t *testing.T) {
	for _, score := range []float64{0, 45, 100, 150, -5} {
		got := Normalize(RawVerdict{Status: "Low Risk", Score: score})
		if got.Score != int(score) {
			t.Errorf("score %v: got %d", score, got.Score)
		}
	}
}

func TestNormalizeWithoutKeywords(t *testing.T) {
	got := Normalize(RawVerdict{})
	if got.RiskLevel != RiskSafe {
		t.Fatalf("expected safe, got %q", got.RiskLevel)
	}
	if got.Highlights == nil || len(got.Highlights) != 0 {
		t.Fatalf("expected empty non-nil highlights, got %#v", got.Highlights)
	}
	if !reflect.DeepEqual(got.Explanation, []string{""}) {
		t.Fatalf("expected advice kept verbatim, got %#v", got.Explanation)
	}
	if !reflect.DeepEqual(got.Actions, []string{"No action needed", "Message appears safe"}) {
		t.Fatalf("unexpected actions %#v", got.Actions)
	}
}

func TestNormalizeDoesNotAliasKeywords(t *testing.T) {
	v := RawVerdict{Status: "Low Risk", Keywords: []string{"click here"}}
	got := Normalize(v)
	v.Keywords[0] = "changed"
	if got.Highlights[0] != "click here" {
		t.Fatalf("highlights share memory with verdict keywords")
	}
}

func TestActionsAreFreshCopies(t *testing.T) {
	a := RiskDanger.Actions()
	a[0] = "mutated"
	if RiskDanger.Actions()[0] != "Do not respond" {
		t.Fatal("actions table was mutated through a returned slice")
	}
}

func TestRankOrder(t *testing.T) {
	if !(RiskDanger.Rank() > RiskSuspicious.Rank() && RiskSuspicious.Rank() > RiskSafe.Rank()) {
		t.Fatal("unexpected display order")
	}
	if RiskLevel("other").Valid() {
		t.Fatal("unknown level reported valid")
	}
}

func TestRenderIdentity(t *testing.T) {
	for _, text := range []string{"", "hello", "Your <b>bank</b> (needs) $5"} {
		if got := Render(text, nil); got != text {
			t.Errorf("Render(%q, nil) = %q", text, got)
		}
		if got := Render(text, []string{}); got != text {
			t.Errorf("Render(%q, []) = %q", text, got)
		}
	}
}

func TestRender(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		highlights []string
		want       string
	}{
		{
			name:       "case insensitive global",
			text:       "URGENT: reply now, this is urgent",
			highlights: []string{"urgent"},
			want:       "<mark>URGENT</mark>: reply now, this is <mark>urgent</mark>",
		},
		{
			name:       "multiple phrases in order",
			text:       "Your password will be verified, urgent action required",
			highlights: []string{"password", "urgent"},
			want:       "Your <mark>password</mark> will be verified, <mark>urgent</mark> action required",
		},
		{
			name:       "absent phrase",
			text:       "See you at dinner",
			highlights: []string{"bitcoin"},
			want:       "See you at dinner",
		},
		{
			name:       "special characters are literal",
			text:       "Pay $5.00 (today) or a+b",
			highlights: []string{"$5.00 (today)", "a+b", "."},
			want:       "Pay <mark>$5<mark>.</mark>00 (today)</mark> or <mark>a+b</mark>",
		},
		{
			name:       "nested phrase",
			text:       "reset password now",
			highlights: []string{"reset password", "password"},
			want:       "<mark>reset <mark>password</mark></mark> now",
		},
		{
			name:       "phrase never matches inside markup",
			text:       "urgent mark",
			highlights: []string{"urgent", "mark"},
			want:       "<mark>urgent</mark> <mark>mark</mark>",
		},
		{
			name:       "phrase matching the closing tag",
			text:       "x /mark y",
			highlights: []string{"x", "/mark"},
			want:       "<mark>x</mark> <mark>/mark</mark> y",
		},
		{
			name:       "empty phrase ignored",
			text:       "abc",
			highlights: []string{""},
			want:       "abc",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Render(c.text, c.highlights); got != c.want {
				t.Fatalf("got  %q\nwant %q", got, c.want)
			}
		})
	}
}

func TestRenderWithCustomMarker(t *testing.T) {
	got := RenderWith(Marker{Open: "[", Close: "]"}, "Click Here", []string{"click here"})
	if got != "[Click Here]" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderFuncSeesOriginalCase(t *testing.T) {
	var seen []string
	out := RenderFunc("URGENT and urgent", []string{"urgent"}, func(m string) string {
		seen = append(seen, m)
		return "[" + m + "]"
	})
	if out != "[URGENT] and [urgent]" {
		t.Fatalf("got %q", out)
	}
	if !reflect.DeepEqual(seen, []string{"URGENT", "urgent"}) {
		t.Fatalf("wrap saw %v", seen)
	}
}
