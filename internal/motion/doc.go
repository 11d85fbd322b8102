// Package motion holds the small state machines behind the landing page's
// interactive behaviour: one-shot visibility triggers, eased count-up
// animations, carousel rotation and scroll threshold toggles.
//
// Every type here is owned by a single page view. None of them is safe for
// concurrent use; callers that share one across goroutines must serialize
// access themselves.
package motion
