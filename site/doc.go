// Package site holds the page content of the Verdana marketing site: the
// document layout, the home and privacy-policy pages, and the embedded
// static assets.
package site
