// Package lucid provides the control infrastructure for a small UI
// component toolkit: templated controls with named parts, mutually
// exclusive visual states, subscriber-based signals, and effective
// viewport notifications.
//
// Concrete controls live in subpackages:
//   - imagex: lazy-loading image control
//   - dial:   radial value input control
//   - chrome: title bar color extensions
//
// The toolkit does not render anything itself. A host framework applies
// templates, publishes viewport changes, and reacts to visual state
// transitions through a StateSink.
package lucid
