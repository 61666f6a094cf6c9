// Package session keeps game sessions in memory.
//
// Each session owns one engine.Game with its own random source, plus the
// scenario it was started from and access timestamps. Session IDs are
// short lower-case strings cut from a random UUID; lookups ignore case.
//
// The manager guards its map with a read-write mutex. It does not guard
// the games themselves: callers serialize access to a session's engine.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//	sessions := manager.List()
//
// Sessions live until deleted or until CleanupExpiredSessions drops those
// idle for longer than a given age. Nothing is written to disk.
package session
