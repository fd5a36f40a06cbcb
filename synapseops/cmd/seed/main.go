// Seeds the widget greeting into a session on a running server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"synapseops/synapseops/config"
	"synapseops/synapseops/utils/types"
)

const greeting = "Hello! I'm your SynapseOps assistant. How can I help you today?"

func main() {
	cfg := config.LoadConfig()

	sessionID := uuid.New().String()
	if len(os.Args) > 1 {
		sessionID = os.Args[1]
	}

	body, err := json.Marshal(types.SubmitMessageRequest{
		Content:   greeting,
		IsUser:    false,
		SessionID: sessionID,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal request:", err)
		os.Exit(1)
	}

	url := "http://localhost" + cfg.Addr + "/messages"
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "post greeting:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintln(os.Stderr, "unexpected status:", resp.Status)
		os.Exit(1)
	}

	var out types.SubmitMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Fprintln(os.Stderr, "decode response:", err)
		os.Exit(1)
	}
	fmt.Println("seeded greeting into session:", sessionID)
	fmt.Println("message id:", out.UserMessage.ID)
}
