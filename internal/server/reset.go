package server

import (
	"fmt"
	"net/http"
	"sync"
)

// ResetResult contains the outcome of a reset-link capture.
type ResetResult struct {
	Token string
	err   error
}

func (r *ResetResult) Error() error {
	return r.err
}

// ResetTokenHandler captures the password-reset token from the emailed link.
//
// The backend's reset email points at {host}/reset?token=...; while `movu auth
// confirm-reset` waits, this handler serves that path, extracts the token, and
// delivers it over a one-shot channel. Implements [Handler] for registration
// with a [Router].
type ResetTokenHandler struct {
	resultChan  chan ResetResult
	once        sync.Once
	callbackHit bool
	mu          sync.Mutex
}

// NewResetTokenHandler creates a handler awaiting a single reset callback.
func NewResetTokenHandler() *ResetTokenHandler {
	return &ResetTokenHandler{
		resultChan: make(chan ResetResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *ResetTokenHandler) Routes() []string {
	return []string{"/reset"}
}

// ServeHTTP handles the reset-link request.
//
// Extracts the token query parameter and sends it through the result channel.
func (h *ResetTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only handle the callback once
	h.mu.Lock()
	if h.callbackHit {
		h.mu.Unlock()
		http.Error(w, "Reset link already processed", http.StatusBadRequest)
		return
	}
	h.callbackHit = true
	h.mu.Unlock()

	token := r.URL.Query().Get("token")
	if token == "" {
		err := fmt.Errorf("reset link carried no token")
		h.Send(ResetResult{err: err})
		http.Error(w, "Missing token parameter", http.StatusBadRequest)
		return
	}

	h.Send(ResetResult{Token: token})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Reset Link Received</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #E50914; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Reset Link Received</h1>
        <p>You can close this window and return to the terminal to finish resetting your password.</p>
    </div>
</body>
</html>
`)
}

// Send sends the reset result through the channel (only once).
func (h *ResetTokenHandler) Send(result ResetResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the result channel for receiving the captured token.
//
// Channel will receive exactly one result and then be closed.
func (h *ResetTokenHandler) Result() <-chan ResetResult {
	return h.resultChan
}
