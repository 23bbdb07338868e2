package configs

// HTTP defines configuration for the HTTP server. Host may be left
// empty to bind all interfaces; Port defaults to 8080.
type HTTP struct {
	// Host is the interface the server binds to.
	Host string `env:"HOST" envDefault:""`
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
