package configs

// Dataset controls the synthetic dataset generated at startup. The same
// Seed and Customers always produce the same tables, so a deployment can
// be pinned to a reproducible dataset.
type Dataset struct {
	// Seed feeds the random generator used for both tables.
	Seed int64 `env:"SEED" envDefault:"42"`
	// Customers is the number of customer rows to generate.
	Customers int `env:"CUSTOMERS" envDefault:"1000"`
}
