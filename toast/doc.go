// Package toast implements the ephemeral notification surface.
//
// A Toast is a small state machine: Visible while the message shows,
// Hiding once dismissed (explicitly or by the auto-dismiss countdown), and
// Gone after the fixed 300 ms grace delay that lets the host play an exit
// animation before discarding the instance. OnClose fires exactly once, on
// the Hiding -> Gone transition.
//
//	t := toast.New(toast.Options{
//	    Message:  "Saved",
//	    Level:    toast.LevelSuccess,
//	    Duration: time.Second,
//	    Show:     true,
//	    OnClose:  func() { /* unmount */ },
//	})
package toast
