package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses execution for a random time between min and max (milliseconds)
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}

// PacedDelay applies the configured fixed delay between consecutive page
// navigations, with a small jitter on top. This is a policy constant, not
// adaptive backoff.
func PacedDelay(seconds int) {
	if seconds <= 0 {
		return
	}
	RandomDelay(seconds*1000, seconds*1000+500)
}

// HumanScroll simulates human-like scrolling behavior
func HumanScroll(page playwright.Page) {
	//scroll down a bit
	page.Mouse().Wheel(0, 500)
	RandomDelay(500, 1000)

	//scroll up a tiny bit (human-like correction)
	page.Mouse().Wheel(0, -200)
	RandomDelay(500, 800)

	//scroll to bottom to trigger lazy loading
	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
}

// MouseJiggle simulates random mouse movements
func MouseJiggle(page playwright.Page) {
	x := float64(rand.Intn(800) + 100) //100-900
	y := float64(rand.Intn(600) + 100) //100-700

	page.Mouse().Move(x, y)
	RandomDelay(100, 300)
}
