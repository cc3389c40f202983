package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatbotReply(t *testing.T) {
	bot := NewChatbotService()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "Hello there", chatRules[0].response},
		{"beach any case", "Show me BEACH options", chatRules[1].response},
		{"beach wins over later rules", "beach prices and cancel policy", chatRules[1].response},
		{"greeting wins over beach", "hey, any beach trips?", chatRules[0].response},
		{"trek", "Looking for a TREK", chatRules[2].response},
		{"budget", "what is the cost", chatRules[3].response},
		{"reserve", "can I reserve a seat", chatRules[4].response},
		{"cultural", "cultural tours", chatRules[5].response},
		{"adventure", "ADVENTURE sports", chatRules[6].response},
		{"nature", "nature walks", chatRules[7].response},
		{"payment", "upi payment options", chatRules[8].response},
		{"refund", "refund policy", chatRules[9].response},
		{"guide", "do you provide a guide", chatRules[10].response},
		{"fallback", "What is the weather like", FallbackReply},
		{"empty", "", FallbackReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bot.Reply(tt.message))
		})
	}
}

func TestChatbotFallbackVerbatim(t *testing.T) {
	assert.Equal(t,
		"I'd be happy to help! You can ask me about destinations, prices, booking process, or any travel-related questions.",
		NewChatbotService().Reply("zzz"))
}
