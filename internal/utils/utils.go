package utils

import (
	"strings"
	"time"

	"github.com/goombaio/namegenerator"
)

// GenerateSessionName creates a random, memorable name for an audit session
// using namegenerator
func GenerateSessionName() string {
	seed := time.Now().UTC().UnixNano()
	nameGenerator := namegenerator.NewNameGenerator(seed)

	// Generate a name like "wispy-dust"
	name := nameGenerator.Generate()

	// Some names might have underscores; convert to hyphens for consistency
	name = strings.ReplaceAll(name, "_", "-")

	return name
}
