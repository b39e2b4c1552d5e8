// Package prefs manages the accessibility font preference.
//
// The preference is a single string persisted per browser under the
// "accessibility-font" key. Applying it mutates the document-wide
// --font-family style variable, modeled as an explicit Theme object with a
// subscription mechanism rather than ambient global state. The Store is
// the only writer; Save is the atomic apply-then-persist operation.
package prefs
