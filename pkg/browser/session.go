package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Navigate loads a URL in the session's page and records it as the current
// URL on success.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	gotoOpts := playwright.PageGotoOptions{}

	switch opts.WaitUntil {
	case "", "networkidle":
		gotoOpts.WaitUntil = playwright.WaitUntilStateNetworkidle
	case "load":
		gotoOpts.WaitUntil = playwright.WaitUntilStateLoad
	case "domcontentloaded":
		gotoOpts.WaitUntil = playwright.WaitUntilStateDomcontentloaded
	default:
		return fmt.Errorf("invalid wait_until value: %s", opts.WaitUntil)
	}
	if opts.Timeout > 0 {
		gotoOpts.Timeout = playwright.Float(opts.Timeout)
	}

	if _, err := s.Page.Goto(url, gotoOpts); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// WaitForIdle blocks until the page reaches network idle or the timeout
// expires. It implements IdleWaiter and must succeed before Snapshot is
// worth taking; Snapshot calls it itself as a guard.
func (s *Session) WaitForIdle(timeout time.Duration) error {
	err := s.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("page did not become idle: %w", err)
	}
	return nil
}
