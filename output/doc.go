// Package output provides styled terminal notifications for Sprout.
//
// # Overview
//
// Notifications are what the user sees: success messages, warnings and the
// error toast shown when a generation fails. Technical detail belongs in the
// log (see package logger), not here.
//
// # Usage
//
// Commands bind a Printer to a writer once and pass it down:
//
//	p := output.New(os.Stdout)
//	p.Success("Component Card created successfully.")
//	p.Step("src/components/Card/Card.tsx")
//	p.Error("A folder named 'Card' already exists.")
//
// The package-level helpers write through a default Printer on stdout.
//
// # Verbose Mode
//
//	p.SetVerbose(true)
//	p.Verbose("Loading template: component.txt")
//
// # Styling
//
//   - Success: 🌱 green bold
//   - Error: ❌ red bold
//   - Warn: ⚠️ yellow
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
