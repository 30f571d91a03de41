package browser

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"
)

const loginURL = "https://www.linkedin.com/login"

// Login signs into LinkedIn with the given credentials. When either
// credential is empty the session stays anonymous: logged-in is false and no
// error is returned. A rejected login is an error so callers can decide
// whether to continue in limited mode.
func Login(page playwright.Page, email, password string) (bool, error) {
	if email == "" || password == "" {
		log.Println("⚠️ LinkedIn credentials not provided. Running in anonymous mode, some features may be limited.")
		return false, nil
	}

	log.Println("🔑 Logging into LinkedIn...")
	if _, err := page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return false, fmt.Errorf("failed to load login page: %w", err)
	}
	RandomDelay(1000, 2000)

	if err := page.Locator("#username").Fill(email); err != nil {
		return false, fmt.Errorf("failed to fill email field: %w", err)
	}
	if err := page.Locator("#password").Fill(password); err != nil {
		return false, fmt.Errorf("failed to fill password field: %w", err)
	}
	if err := page.Locator("button[type='submit']").Click(); err != nil {
		return false, fmt.Errorf("failed to submit login form: %w", err)
	}

	//give the redirect time to land
	RandomDelay(4000, 6000)

	current := page.URL()
	if strings.Contains(current, "feed") || strings.Contains(current, "mynetwork") {
		log.Println("✅ Successfully logged into LinkedIn")
		return true, nil
	}
	return false, fmt.Errorf("login rejected - please check credentials")
}
