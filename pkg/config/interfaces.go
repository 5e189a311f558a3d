package config

// Validator interface for configurations that need validation.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by configurations that fill their own defaults
// before anything is loaded on top.
type Defaulter interface {
	SetDefaults()
}
