// Package tui implements the terminal editor using Bubble Tea.
//
// # Architecture
//
// The Model is a view over an editor.Session, which owns the grid and the
// active color. Every state transition happens in Update; the grid is
// only read by View.
//
// # State Machine
//
//   - StateEditing: cursor movement, painting, palette selection
//   - StateSizeInput: width and height prompt for a new grid
//   - StateColorInput: custom color prompt
//   - StateSaveInput/StateLoadInput: file path prompts
//   - StateError: last file or color error, any key returns to editing
//
// # Async Command Pattern
//
// File I/O never runs in Update. Commands work on their own data and
// report back:
//
//	saveGrid() → savedMsg | fileErrorMsg
//	loadGrid() → loadedMsg | fileErrorMsg
//
// A loaded grid is installed into the session by Update, so the session is
// only ever touched from the Bubble Tea event loop.
package tui
