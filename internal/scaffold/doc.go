// Package scaffold decides which template files a Chrome extension project
// needs and where they go, then materializes them.
//
// Synthesize turns an answers.Config and the global Options into a Plan: an
// ordered list of placements, each naming a template key, a destination path
// and the values the template body is rendered with. Each placement rule is
// a pure function of the config, so plans are reproducible. A Generator
// executes a plan against a templates.Store and a Writer.
package scaffold
