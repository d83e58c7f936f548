// Package provider implements the translation backends and the fallback
// chain that drives them.
package provider

import "github.com/Glanita/traducteur"

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = traducteur.Provider
