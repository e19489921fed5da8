package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cleardef/internal/mockserver"
)

// mockOpts holds the command-line flags for the mock command.
type mockOpts struct {
	addr     string // listen address
	fixtures string // fixture directory
}

// newMockCmd creates the mock command, which serves a local stand-in for the
// definitions endpoint.
func newMockCmd() *cobra.Command {
	var opts mockOpts

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve a local fixture-backed definitions endpoint",
		Long: `Serve a local stand-in for the definitions endpoint.

Fixtures are JSON files holding batch-shaped objects (coordinate text to
definition). Coordinates without a fixture are answered like the real
service answers unprocessed components. Point lookups at the mock with:

  cleardef mock --fixtures ./fixtures &
  cleardef lookup --root http://localhost:8734 crate/cratesio/-/syn/1.0.14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMock(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8734", "listen address")
	cmd.Flags().StringVar(&opts.fixtures, "fixtures", "", "directory of fixture JSON files")

	return cmd
}

func runMock(ctx context.Context, opts mockOpts) error {
	logger := loggerFromContext(ctx)

	srv := mockserver.New(logger)
	if opts.fixtures != "" {
		if err := srv.LoadFixtures(opts.fixtures); err != nil {
			return err
		}
	}

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mock definitions endpoint listening", "addr", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
