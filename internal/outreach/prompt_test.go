package outreach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	p := DefaultProfile()

	got := BuildPrompt("Acme", []string{"Makes rockets", "Ships worldwide"}, p)
	assert.Contains(t, got, "Write a concise, personalized outreach email")
	assert.Contains(t, got, "Company: Acme\n")
	assert.Contains(t, got, "Key Insights: Makes rockets, Ships worldwide\n")
	assert.Contains(t, got, "Your Business: "+p.Description+"\n")
	assert.Contains(t, got, "\nEmail:\n")
}

func TestBuildPrompt_NoInsights(t *testing.T) {
	got := BuildPrompt("Acme", nil, DefaultProfile())
	assert.Contains(t, got, "Key Insights: N/A\n")
}

func TestFallbackMessage(t *testing.T) {
	tests := []struct {
		name     string
		insights []string
		want     string
	}{
		{
			name: "no insights",
			want: "Hello Acme team,\n\nI noticed your business. As a hardware computer store, we offer tailored " +
				"solutions that could help your business grow. If you are interested in upgrading your computing " +
				"infrastructure or need reliable hardware support, let's connect!\n\nBest regards,\n[Your Name]",
		},
		{
			name:     "with insights",
			insights: []string{"Makes rockets", "Ships worldwide"},
			want: "Hello Acme team,\n\nI noticed Makes rockets, Ships worldwide. As a hardware computer store, we offer tailored " +
				"solutions that could help your business grow. If you are interested in upgrading your computing " +
				"infrastructure or need reliable hardware support, let's connect!\n\nBest regards,\n[Your Name]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackMessage("Acme", tt.insights, DefaultProfile()))
		})
	}
}

func TestFallbackMessage_CustomProfile(t *testing.T) {
	p := Profile{Pitch: "We fix printers.", Signature: "Sam"}
	got := FallbackMessage("Acme", nil, p)
	assert.Equal(t, "Hello Acme team,\n\nI noticed your business. We fix printers.\n\nBest regards,\nSam", got)
}
