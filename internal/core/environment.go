package core

// Environment is the deployment environment the service runs in. It mainly
// drives logger output format and level.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment maps a raw config value onto a known Environment.
// Anything unrecognised falls back to Development so a misconfigured
// APP_ENV never prevents startup.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case Production, Staging, Testing:
		return Environment(v)
	default:
		return Development
	}
}
