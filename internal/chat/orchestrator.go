package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/logger"
	"codeberg.org/fraude/realm/internal/retry"
)

const (
	// per-attempt ceiling on the send request
	sendTimeout = 30 * time.Second
	// attempts per submission: the first try plus two retries
	sendAttempts = 3
	// linear backoff base between attempts
	sendBackoffBase = time.Second
)

// Sender is the slice of the API client the orchestrator needs.
type Sender interface {
	CreateSession(ctx context.Context, title string) (*api.Session, error)
	SendMessage(ctx context.Context, content, sessionID, mode string) (*api.SendResult, error)
}

// Phrasing supplies the theme-dependent pending and retry texts.
type Phrasing struct {
	Waiting string
	Retry   func(attempt, maxRetries int) string
	Failed  string
}

// fills in unset phrasing fields
func (p Phrasing) withDefaults() Phrasing {
	if p.Waiting == "" {
		p.Waiting = "Fraude weaves through your thoughts..."
	}
	if p.Retry == nil {
		p.Retry = func(attempt, maxRetries int) string {
			return fmt.Sprintf("Retry %d/%d: The serpent gathers its thoughts...", attempt, maxRetries)
		}
	}
	if p.Failed == "" {
		p.Failed = "Something went wrong. Please try again."
	}
	return p
}

// SendRequest is one form submission, snapshotted before any effect.
type SendRequest struct {
	Content   string
	SessionID string // empty when no session is selected yet
	Mode      string
}

// Outcome is what a settled submission asks of the UI.
type Outcome struct {
	// false when the content trimmed to nothing and nothing happened
	Submitted bool
	// terminal error, nil on success
	Err error
	// a session was implicitly created for this send
	SessionCreated bool
	// server-supplied title to adopt, empty when unchanged
	NewTitle string
	// the session list should be re-fetched (fire and forget)
	RefreshSessions bool
}

// Orchestrator drives a single message submission through its states.
// One submission is in flight at a time; the UI keeps the input
// disabled until the outcome arrives.
type Orchestrator struct {
	sender   Sender
	phrasing Phrasing

	attempts    int
	timeout     time.Duration
	backoffBase time.Duration
}

// returns an orchestrator over the given sender
func NewOrchestrator(sender Sender, phrasing Phrasing) *Orchestrator {
	return &Orchestrator{
		sender:      sender,
		phrasing:    phrasing.withDefaults(),
		attempts:    sendAttempts,
		timeout:     sendTimeout,
		backoffBase: sendBackoffBase,
	}
}

// Send runs the submission to a settled state, reporting every display
// effect through notify before returning. The optimistic user entry and
// the pending indicator are emitted before any network call.
func (o *Orchestrator) Send(ctx context.Context, req SendRequest, notify func(Event)) Outcome {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return Outcome{}
	}

	if notify == nil {
		notify = func(Event) {}
	}

	// optimistic append, then the pending indicator
	notify(EntryAppended{Entry: Entry{
		ID:      uuid.NewString(),
		Kind:    EntryUser,
		Content: content,
		Mode:    req.Mode,
	}})

	pendingID := uuid.NewString()
	notify(EntryAppended{Entry: Entry{
		ID:      pendingID,
		Kind:    EntryPending,
		Content: o.phrasing.Waiting,
		Mode:    req.Mode,
	}})
	notify(PhaseChanged{Phase: PhaseOptimisticallyDisplayed})

	// lazy session creation blocks the send
	sessionID := req.SessionID
	sessionCreated := false

	if sessionID == "" {
		notify(PhaseChanged{Phase: PhaseEnsuringSession})

		session, err := o.sender.CreateSession(ctx, "New Chat")
		if err != nil {
			logger.ErrorErr(err, "implicit session creation failed")
			return o.settleError(notify, req.Mode, pendingID, fmt.Errorf("Failed to create session"))
		}

		sessionID = session.ID
		sessionCreated = true
		notify(SessionEnsured{Session: *session})
	}

	notify(PhaseChanged{Phase: PhaseSending})

	var result *api.SendResult

	err := retry.Do(ctx, retry.Options{
		Attempts: o.attempts,
		Delay:    retry.Linear(o.backoffBase),
		OnRetry: func(attempt int) {
			notify(PhaseChanged{Phase: PhaseRetrying})
			notify(EntryUpdated{ID: pendingID, Content: o.phrasing.Retry(attempt-1, o.attempts-1)})
			notify(PhaseChanged{Phase: PhaseSending})
		},
	}, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()

		var sendErr error
		result, sendErr = o.sender.SendMessage(attemptCtx, content, sessionID, req.Mode)
		return sendErr
	})

	if err != nil {
		out := o.settleError(notify, req.Mode, pendingID, err)
		out.SessionCreated = sessionCreated
		return out
	}

	notify(EntryRemoved{ID: pendingID})

	mode := result.Mode
	if mode == "" {
		mode = req.Mode
	}

	notify(EntryAppended{Entry: Entry{
		ID:      uuid.NewString(),
		Kind:    EntryBot,
		Content: result.Reply,
		Mode:    mode,
	}})
	notify(PhaseChanged{Phase: PhaseSettledSuccess})

	newTitle := result.SessionTitle
	if newTitle == "Untitled Chat" {
		newTitle = ""
	}

	return Outcome{
		Submitted:       true,
		SessionCreated:  sessionCreated,
		NewTitle:        newTitle,
		RefreshSessions: sessionCreated || newTitle != "",
	}
}

// removes the pending indicator and leaves an inline error entry
func (o *Orchestrator) settleError(notify func(Event), mode, pendingID string, err error) Outcome {
	notify(EntryRemoved{ID: pendingID})

	message := o.phrasing.Failed
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	notify(EntryAppended{Entry: Entry{
		ID:      uuid.NewString(),
		Kind:    EntryError,
		Content: message,
		Mode:    mode,
	}})
	notify(PhaseChanged{Phase: PhaseSettledError})

	return Outcome{Submitted: true, Err: err}
}
