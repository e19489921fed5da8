package definitions

import (
	"context"
	"iter"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cleardef/pkg/coordinate"
	"github.com/matzehuels/cleardef/pkg/errors"
	"github.com/matzehuels/cleardef/pkg/observability"
)

const (
	// defaultTimeout bounds a single definitions request. The service can
	// take tens of seconds on a full chunk.
	defaultTimeout = 60 * time.Second

	// defaultParallel is the default number of in-flight chunk requests.
	defaultParallel = 4
)

// Options configures a Client. The zero value is usable: production root,
// a default HTTP client with a timeout, four parallel requests, no logging.
type Options struct {
	// HTTPClient executes the prepared requests. nil gets a default client
	// with a 60s timeout. Retry and caching policy, if any, belong to this
	// collaborator or its transport, never to the Client.
	HTTPClient *http.Client

	// Root is the service root URI. Empty means DefaultRoot; point it at a
	// mock endpoint for testing.
	Root string

	// Parallel bounds the number of in-flight chunk requests. Values < 1
	// mean the default of 4.
	Parallel int

	// Logger receives per-request debug logging. nil disables it.
	Logger *log.Logger
}

// Client dispatches chunked definitions lookups against the service.
//
// The Client owns no state beyond its configuration and is safe for
// concurrent use. It deliberately does not retry, cache, or decode error
// bodies; see the package documentation for the split of responsibilities.
type Client struct {
	http     *http.Client
	root     string
	parallel int
	logger   *log.Logger
}

// NewClient creates a Client from opts, applying defaults for zero fields.
func NewClient(opts Options) *Client {
	c := &Client{
		http:     opts.HTTPClient,
		root:     opts.Root,
		parallel: opts.Parallel,
		logger:   opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	if c.root == "" {
		c.root = DefaultRoot
	}
	if c.parallel < 1 {
		c.parallel = defaultParallel
	}
	return c
}

// Root returns the service root URI this client targets.
func (c *Client) Root() string {
	return c.root
}

// Definitions looks up definitions for coords, issuing one POST per chunk of
// chunkSize coordinates (capped at MaxCoordinates) with at most Parallel
// requests in flight. Results are concatenated in chunk order; the first
// error cancels the remaining requests and is returned.
func (c *Client) Definitions(ctx context.Context, chunkSize int, coords iter.Seq[coordinate.Coordinate]) ([]Definition, error) {
	var chunks [][]string
	for chunk := range Chunks(chunkSize, coords) {
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		results  = make([][]Definition, len(chunks))
		sem      = make(chan struct{}, c.parallel)
	)

	for i, chunk := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			defs, err := c.fetchChunk(ctx, chunk)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				return
			}
			results[i] = defs
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	var defs []Definition
	for _, r := range results {
		defs = append(defs, r...)
	}
	return defs, nil
}

// fetchChunk issues one definitions request and decodes the response.
func (c *Client) fetchChunk(ctx context.Context, chunk []string) ([]Definition, error) {
	id := uuid.NewString()
	start := time.Now()
	observability.Request().OnRequestStart(ctx, id, len(chunk))

	req, err := NewRequest(c.root, chunk)
	if err != nil {
		observability.Request().OnRequestComplete(ctx, id, 0, time.Since(start), err)
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("X-Request-Id", id)

	if c.logger != nil {
		c.logger.Debug("requesting definitions", "request_id", id, "coordinates", len(chunk))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		observability.Request().OnRequestComplete(ctx, id, 0, time.Since(start), err)
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "sending definitions request")
	}
	defer resp.Body.Close()

	defs, err := HandleResponse(resp)
	observability.Request().OnRequestComplete(ctx, id, resp.StatusCode, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Debug("definitions received", "request_id", id,
			"definitions", len(defs), "elapsed", time.Since(start).Round(time.Millisecond))
	}
	return defs, nil
}
