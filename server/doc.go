// Package server serves the Verdana marketing site. Pages are rendered
// server-side over plain HTTP; interactivity (the accessibility dock and
// toast notifications) runs through per-connection live sessions on the
// /live WebSocket endpoint, which re-render the app region server-side and
// push HTML, storage writes, and style variables to a thin client.
package server
