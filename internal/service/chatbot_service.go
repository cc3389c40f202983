package service

import "strings"

// ChatbotService answers free-text travel questions with canned replies
type ChatbotService interface {
	Reply(message string) string
}

type chatRule struct {
	keywords []string
	response string
}

const FallbackReply = "I'd be happy to help! You can ask me about destinations, prices, booking process, or any travel-related questions."

// Rules are checked top-down and the first rule with a keyword in the message wins.
var chatRules = []chatRule{
	{[]string{"hello", "hi", "hey"}, "Hello! I'm your travel assistant. How can I help you plan your next adventure?"},
	{[]string{"beach"}, "We have amazing beach destinations like Goa and Andaman Islands! Would you like to know more about them?"},
	{[]string{"mountain", "trek", "hiking"}, "Our Manali Mountain Trek is perfect for adventure lovers! It's a 5-day expedition through the Himalayas."},
	{[]string{"price", "cost", "budget"}, "Our trips range from ₹12,000 to ₹35,000 depending on the destination and duration. What's your budget?"},
	{[]string{"book", "booking", "reserve"}, "To book a trip, browse our destinations, click 'View Details', and then 'Confirm Trip'. It's that simple!"},
	{[]string{"cultural"}, "Check out our Jaipur Heritage Tour! Experience the royal palaces and rich culture of Rajasthan."},
	{[]string{"adventure"}, "Try our Rishikesh Adventure package! It includes white water rafting, bungee jumping, and yoga."},
	{[]string{"nature"}, "The Kerala Backwaters tour is perfect for nature lovers. Sail through serene backwaters on a houseboat!"},
	{[]string{"payment", "pay"}, "We accept Google Pay, Paytm, and Credit/Debit cards. All payments are secure!"},
	{[]string{"cancel", "refund"}, "You can cancel your booking up to 48 hours before departure for a full refund."},
	{[]string{"guide"}, "All our trips include experienced local guides who speak English and Hindi."},
}

type chatbotService struct {
	rules    []chatRule
	fallback string
}

// NewChatbotService creates a keyword-matching ChatbotService
func NewChatbotService() ChatbotService {
	return &chatbotService{rules: chatRules, fallback: FallbackReply}
}

func (s *chatbotService) Reply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range s.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.response
			}
		}
	}
	return s.fallback
}
