package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"synapseops/synapseops/controllers"
	"synapseops/synapseops/store"
	"synapseops/synapseops/utils/logging"
	"synapseops/synapseops/utils/types"
)

// MessageRoutes exposes the gateway. archiveCtrl may be nil when no object
// storage is configured; the archive route is then not registered.
func MessageRoutes(ctrl *controllers.MessageController, archiveCtrl *controllers.ArchiveController) chi.Router {
	r := chi.NewRouter()

	// GET /messages/{session_id} : ordered transcript, empty for unknown sessions
	r.Get("/{session_id}", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		msgs, err := ctrl.List(r.Context(), sessionID)
		if err != nil {
			logging.ErrorLogger.Error("fetch messages failed", zap.String("session_id", sessionID), zap.Error(err))
			http.Error(w, "failed to fetch messages", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(msgs)
	})

	// POST /messages : submit a message, get the stored message(s) back
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp, err := ctrl.Submit(r.Context(), req)
		if err != nil {
			if errors.Is(err, store.ErrEmptyContent) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			logging.ErrorLogger.Error("create message failed", zap.String("session_id", req.SessionID), zap.Error(err))
			http.Error(w, "failed to create message", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	if archiveCtrl != nil {
		// POST /messages/{session_id}/archive : export the transcript to object storage
		r.Post("/{session_id}/archive", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "session_id")
			key, err := archiveCtrl.Archive(r.Context(), sessionID)
			if err != nil {
				logging.ErrorLogger.Error("archive failed", zap.String("session_id", sessionID), zap.Error(err))
				http.Error(w, "failed to archive transcript", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(types.ArchiveResponse{Key: key})
		})
	}

	// Live widget connection: one submission per frame, reply per frame.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}
			var req types.SubmitMessageRequest
			if err := json.Unmarshal(data, &req); err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
				continue
			}
			// Frames from the widget are always user utterances.
			req.IsUser = true
			resp, err := ctrl.Submit(ctx, req)
			if err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"`+err.Error()+`"}`))
				continue
			}
			out, err := json.Marshal(resp)
			if err != nil {
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, out); err != nil {
				return
			}
		}
	})

	return r
}
