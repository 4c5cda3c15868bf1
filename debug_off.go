//go:build !mcldebug

package mcl

const debugAssertions = false
