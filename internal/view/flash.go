package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"

	flashSaveScheduled = "flash.save_scheduled"
)

// FlashData holds one-time messages shown at the top of the next rendered page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash adds a flash message to the session. The session is saved once,
// right before the response header is written, so every flash of a request
// ends up in a single cookie.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	sess.AddFlash(message, key)

	if c.Get(flashSaveScheduled) != nil {
		return
	}
	c.Set(flashSaveScheduled, true)
	c.Response().Before(func() {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			c.Logger().Warnf("failed to save flash: %v", err)
		}
	})
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() returns and clears the stored messages.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)
	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}

	data.Success = toStrings(successFlashes)
	data.Error = toStrings(errorFlashes)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
