package config

import "strings"

// Environment names the deployment stage of the service.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Normalize maps short and mixed-case spellings to a known environment.
// Unknown values are treated as development.
func (e Environment) Normalize() Environment {
	switch strings.ToLower(strings.TrimSpace(string(e))) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool {
	return e.Normalize() == Production
}
