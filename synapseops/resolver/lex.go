package resolver

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	lextypes "github.com/aws/aws-sdk-go-v2/service/lexruntimev2/types"
	"go.uber.org/zap"

	"synapseops/synapseops/utils/logging"
)

const (
	fallbackNotUnderstood = "Sorry, I didn't quite understand that."
	fallbackEngineError   = "Error: Connection to the assistant failed."
)

// RecognizeTextAPI is the slice of the Lex V2 runtime client we use.
type RecognizeTextAPI interface {
	RecognizeText(ctx context.Context, params *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error)
}

// completedActionTypes end a conversation turn: the stored session state is
// cleared so the next message starts a new conversation. Compared as strings
// to match the engine contract exactly.
var completedActionTypes = map[string]bool{
	"Fulfilled":    true,
	"Close":        true,
	"ElicitIntent": true,
}

// LexResolver delegates response resolution to an Amazon Lex V2 bot. The
// bot's session state is an opaque continuation token: it is held per
// session, replayed verbatim on every turn, and never inspected beyond the
// dialog action type.
type LexResolver struct {
	client     RecognizeTextAPI
	botID      string
	botAliasID string
	localeID   string

	mu     sync.Mutex
	states map[string]*lextypes.SessionState
}

func NewLexResolver(client RecognizeTextAPI, botID, botAliasID, localeID string) *LexResolver {
	return &LexResolver{
		client:     client,
		botID:      botID,
		botAliasID: botAliasID,
		localeID:   localeID,
		states:     make(map[string]*lextypes.SessionState),
	}
}

func (r *LexResolver) Resolve(ctx context.Context, sessionID, text string) string {
	defer logging.LogDuration(ctx, "lex_resolve")()

	r.mu.Lock()
	prior := r.states[sessionID]
	r.mu.Unlock()

	out, err := r.client.RecognizeText(ctx, &lexruntimev2.RecognizeTextInput{
		BotId:        aws.String(r.botID),
		BotAliasId:   aws.String(r.botAliasID),
		LocaleId:     aws.String(r.localeID),
		SessionId:    aws.String(sessionID),
		Text:         aws.String(text),
		SessionState: prior,
	})
	if err != nil {
		// State is left as-is: a transient failure resumes the
		// in-progress turn on the next attempt.
		logging.ErrorLogger.Error("lex recognize text failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return fallbackEngineError
	}

	r.mu.Lock()
	switch {
	case out.SessionState == nil:
		delete(r.states, sessionID)
	case out.SessionState.DialogAction != nil && completedActionTypes[string(out.SessionState.DialogAction.Type)]:
		// Intent complete (e.g. a request finished or a Q&A answered).
		delete(r.states, sessionID)
	default:
		// Still mid-turn (e.g. the bot is asking for a date).
		r.states[sessionID] = out.SessionState
	}
	r.mu.Unlock()

	parts := make([]string, 0, len(out.Messages))
	for _, msg := range out.Messages {
		if msg.Content != nil {
			parts = append(parts, *msg.Content)
		}
	}
	if len(parts) == 0 {
		return fallbackNotUnderstood
	}
	return strings.Join(parts, " ")
}
