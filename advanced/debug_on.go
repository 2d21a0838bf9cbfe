//go:build hulldebug

package advanced

const debugChecks = true
