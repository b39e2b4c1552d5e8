// Package reactive provides the small state primitives the site's
// components are built on: subscribable signals, disposal scopes, and
// cancellable one-shot timers.
//
// All component state lives in signals owned by a scope; disposing the
// scope cancels every outstanding timer and subscription, so an unmounted
// component can never fire a stale callback.
package reactive
