package resolver

import (
	"context"
	"math/rand/v2"
	"strings"
)

type rule struct {
	keywords []string
	response string
}

// RulesResolver matches keywords in priority order and falls back to a
// random pick from a fixed filler pool. Stateless across calls.
type RulesResolver struct {
	rules   []rule
	fillers []string
}

func NewRulesResolver() *RulesResolver {
	return &RulesResolver{
		rules: []rule{
			{
				keywords: []string{"help"},
				response: "I'm here to assist you! SynapseOps provides intelligent automation and AI-driven solutions. What specific area would you like to explore?",
			},
			{
				keywords: []string{"synapse", "company"},
				response: "SynapseOps is your intelligent operations partner. We leverage cutting-edge AI to streamline workflows and enhance decision-making processes.",
			},
			{
				keywords: []string{"ai", "intelligence"},
				response: "Our AI systems are built on advanced neural networks that continuously learn and adapt. We focus on practical intelligence that drives real business value.",
			},
		},
		fillers: []string{
			"I understand your request. As your SynapseOps assistant, I'm here to help you navigate and optimize your workflows.",
			"That's an interesting point. Let me process that information and provide you with the most relevant insights.",
			"Based on your input, I can see you're looking for intelligent automation solutions. SynapseOps specializes in exactly that.",
			"Excellent question! Our neural network architecture is designed to adapt and learn from your specific use cases.",
			"I'm analyzing your requirements through our advanced AI models. This will help me provide more targeted assistance.",
			"Your request has been processed through our intelligent systems. Let me break down the optimal approach for you.",
		},
	}
}

func (r *RulesResolver) Resolve(ctx context.Context, sessionID, text string) string {
	lower := strings.ToLower(text)
	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.response
			}
		}
	}
	return r.fillers[rand.IntN(len(r.fillers))]
}
