package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/inovacc/stele/internal/model"
	"github.com/inovacc/stele/internal/store"
)

var (
	// ErrOffline indicates sync was attempted without network connectivity.
	ErrOffline = errors.New("no network connectivity")

	// ErrNotConfigured indicates no collector endpoint has been set.
	ErrNotConfigured = errors.New("no webhook URL configured")

	// ErrInProgress indicates a sync call was rejected because another one
	// is still outstanding.
	ErrInProgress = errors.New("sync already in progress")
)

// TransferError wraps a transport-level failure. The batch was not marked
// synced and may be retried in its entirety.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed: %v", e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Outcome classifies a completed sync run.
type Outcome int

const (
	// OutcomeNothingToSync means every record was already synced; no
	// request was made.
	OutcomeNothingToSync Outcome = iota

	// OutcomeSynced means the batch was transferred and marked synced.
	OutcomeSynced
)

// Result reports what a sync run did.
type Result struct {
	Outcome Outcome

	// Count is the number of records in the transferred batch.
	Count int
}

// Coordinator pushes unsynced records to the collector endpoint.
type Coordinator struct {
	store    store.Store
	client   *http.Client
	online   func() bool
	inFlight atomic.Bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Coordinator) {
		c.client = client
	}
}

// WithConnectivityProbe sets the connectivity signal checked before any
// request is made.
func WithConnectivityProbe(probe func() bool) Option {
	return func(c *Coordinator) {
		c.online = probe
	}
}

// NewCoordinator creates a sync coordinator bound to the given store.
func NewCoordinator(st store.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store: st,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		online: linkUp,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// batch is the wire shape expected by the Apps Script collector.
type batch struct {
	Data []model.GraveRecord `json:"data"`
}

// Run transfers all currently-unsynced records in one batch.
//
// Preconditions are checked in order: connectivity, configured endpoint,
// non-empty backlog. A transport-level failure returns a *TransferError and
// leaves every sync flag untouched; completion of the request marks the
// whole batch synced regardless of the response status, which is the
// collector contract described in the package documentation.
func (c *Coordinator) Run(ctx context.Context) (Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrInProgress
	}

	defer c.inFlight.Store(false)

	if !c.online() {
		return Result{}, ErrOffline
	}

	cfg, err := c.store.GetConfig()
	if err != nil {
		return Result{}, err
	}

	if cfg.WebhookURL == "" {
		return Result{}, ErrNotConfigured
	}

	unsynced, err := c.store.Unsynced()
	if err != nil {
		return Result{}, err
	}

	if len(unsynced) == 0 {
		return Result{Outcome: OutcomeNothingToSync}, nil
	}

	if err := c.post(ctx, cfg.WebhookURL, batch{Data: unsynced}); err != nil {
		return Result{}, &TransferError{Err: err}
	}

	ids := make([]string, len(unsynced))
	for i, rec := range unsynced {
		ids[i] = rec.ID
	}

	if err := c.store.MarkSynced(ids); err != nil {
		return Result{}, err
	}

	return Result{Outcome: OutcomeSynced, Count: len(unsynced)}, nil
}

func (c *Coordinator) post(ctx context.Context, endpoint string, payload batch) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// text/plain keeps the Apps Script endpoint from requiring a CORS
	// preflight; the body is still JSON.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	defer func() { _ = resp.Body.Close() }()

	// Response status and body are ignored on purpose; drain so the
	// connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// linkUp is the default connectivity probe: any non-loopback interface that
// is up counts as online. It mirrors a browser's online flag rather than
// probing the collector itself.
func linkUp() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 {
			return true
		}
	}

	return false
}
