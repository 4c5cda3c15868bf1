//go:build mcldebug

package mcl

// debugAssertions gates the magic-number integrity check every exported
// Context method runs via assertValid. Release builds (the default)
// compile assertValid to a no-op; builds tagged mcldebug pay the cost
// of catching use of a zero-value, corrupt, or otherwise un-Init'd
// Context.
const debugAssertions = true
