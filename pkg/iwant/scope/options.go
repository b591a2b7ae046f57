package scope

type Option func(*config)

type config struct {
	name     string
	onDivert func(Divert)
}

// WithName labels the scope in Divert events and escape panics
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithOnDivert registers an observer called each time the scope diverts
func WithOnDivert(onDivert func(d Divert)) Option {
	return func(c *config) {
		c.onDivert = onDivert
	}
}

func newConfig(opts []Option) config {
	c := config{name: "anonymous"}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
