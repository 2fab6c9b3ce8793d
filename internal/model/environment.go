package model

// Environment is the deployment environment the service runs in.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
)

// ParseEnvironment falls back to development for unknown names.
func ParseEnvironment(s string) Environment {
	switch e := Environment(s); e {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment:
		return e
	}
	return EnvironmentDevelopment
}

func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
