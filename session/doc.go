// Package session coordinates the collection of partial signatures from
// a committee into one aggregated, attributed signature.
//
// Signing here is non-interactive, so a session is a single round: a
// coordinator opens a session for one message, feeds in partial
// signatures as they arrive from committee members, and finalizes once
// enough members have contributed. The session verifies every partial
// against its member's public key on receipt, so a single bad partial
// is attributed immediately instead of surfacing as an opaque aggregate
// failure later.
//
//	sess, err := session.New(scheme, committee, msg, threshold)
//	if err != nil {
//		return err
//	}
//	for idx, sig := range received {
//		if err := sess.Receive(idx, sig); err != nil {
//			// bad or duplicate partial; attributable to idx
//		}
//	}
//	if sess.Ready() {
//		agg, signers, err := sess.Finalize()
//		// publish agg together with signers
//	}
//
// A session is for one message and one use: Finalize can be called once.
// The package does not handle network transport; callers distribute
// messages with whatever transport they already run.
package session
