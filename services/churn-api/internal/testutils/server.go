package testutils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/app"
)

// StartChurnAPIServer runs the churn-api in-process through app.NewApp on a free port.
// modelPath is relative to the calling test's package directory.
// It returns the base URL and a cleanup function that should be deferred in tests.
func StartChurnAPIServer(t *testing.T, modelPath string) (baseURL string, cleanup func()) {
	t.Helper()

	port, err := getFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}

	t.Setenv("APP_PORT", fmt.Sprintf("%d", port))
	t.Setenv("APP_MODEL_PATH", modelPath)
	t.Setenv("APP_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("GIN_MODE", "test")

	pkg.InitLogger()
	ctx, cancel := context.WithCancel(context.Background())
	a, err := app.NewApp(pkg.Logger)
	if err != nil {
		cancel()
		t.Fatalf("failed to build churn-api app: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	baseURL = fmt.Sprintf("http://127.0.0.1:%d", port)
	wctx, wcancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer wcancel()
	if err := waitForReady(wctx, baseURL+"/health"); err != nil {
		cancel()
		<-done
		a.Close()
		t.Fatalf("churn-api failed to become ready: %v", err)
	}

	cleanup = func() {
		cancel()
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("churn-api stopped with error: %v", err)
		}
		a.Close()
	}
	return baseURL, cleanup
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func waitForReady(ctx context.Context, url string) error {
	client := &http.Client{Timeout: 500 * time.Millisecond}
	for {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout waiting for %s", url)
		}
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
}
