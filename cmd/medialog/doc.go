// Command medialog is a terminal client for a personal media ratings
// library: rate movies, TV shows, books, and video games, follow friends to
// see their ratings, and browse the catalog with average ratings and
// friend-reviewer strips.
//
// The library is an in-memory demo data layer seeded on startup; state lasts
// for one invocation and resets on the next, the same way the original
// single-page application reset on reload.
package main
