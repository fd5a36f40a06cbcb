package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesResolverHelpKeyword(t *testing.T) {
	r := NewRulesResolver()

	got := r.Resolve(context.Background(), "s1", "I need help")
	assert.True(t, strings.HasPrefix(got, "I'm here to assist you!"), "got %q", got)
}

func TestRulesResolverHelpIsCaseInsensitive(t *testing.T) {
	r := NewRulesResolver()

	got := r.Resolve(context.Background(), "s1", "Can somebody HELP me?")
	assert.True(t, strings.HasPrefix(got, "I'm here to assist you!"), "got %q", got)
}

func TestRulesResolverHelpWinsOverOtherKeywords(t *testing.T) {
	r := NewRulesResolver()

	// "help" outranks both the company and the AI rules.
	got := r.Resolve(context.Background(), "s1", "help me understand SynapseOps AI")
	assert.True(t, strings.HasPrefix(got, "I'm here to assist you!"), "got %q", got)
}

func TestRulesResolverCompanyKeyword(t *testing.T) {
	r := NewRulesResolver()

	for _, input := range []string{"tell me about synapse", "what does your company do"} {
		got := r.Resolve(context.Background(), "s1", input)
		assert.True(t, strings.HasPrefix(got, "SynapseOps is your intelligent operations partner."),
			"input %q got %q", input, got)
	}
}

func TestRulesResolverAIKeyword(t *testing.T) {
	r := NewRulesResolver()

	got := r.Resolve(context.Background(), "s1", "how does your artificial intelligence work")
	assert.True(t, strings.HasPrefix(got, "Our AI systems are built"), "got %q", got)
}

func TestRulesResolverFillerMembership(t *testing.T) {
	r := NewRulesResolver()

	for i := 0; i < 50; i++ {
		got := r.Resolve(context.Background(), "s1", "totally unrecognized utterance")
		assert.Contains(t, r.fillers, got)
	}
}
