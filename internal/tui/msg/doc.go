// Package msg defines the message types used by the dashboard's Bubbletea
// event loop, and the command factories that produce them.
//
// Each slice load runs as a [tea.Cmd] and reports back with a loaded
// message carrying the generation it was started with. The model applies a
// result only while it is mounted and the generation is still current.
package msg
