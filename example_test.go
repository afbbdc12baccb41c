package conf_test

import (
	"fmt"

	"go.uber.org/fx"

	conf "github.com/0xalexb/hjarta-conf"
	tomlparser "github.com/0xalexb/hjarta-conf/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-conf/parser/yaml"
)

// Example demonstrates typed access to a configuration tree: writable
// access creates the path, read-only access retrieves it, and an existing
// value never changes its type.
func Example() {
	cfg := conf.New()

	// Writable access creates the "server" table and a zero-valued leaf.
	port, err := conf.At[int64](cfg, "server.port")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	*port = 8080

	value, err := conf.Get[int64](cfg, "server.port")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("port:", value)
	fmt.Println("has server:", cfg.HasKey("server"))

	// The leaf was created as an integer; asking for a string is a conflict.
	_, err = conf.Get[string](cfg, "server.port")
	fmt.Println("as string:", err)
	// Output:
	// port: 8080
	// has server: true
	// as string: type conflict: "server.port" holds integer, requested string
}

// Example_composedSources demonstrates loading two configuration sources
// into one tree. Loads merge rather than overwrite, so sources compose as
// long as they do not collide on a value.
func Example_composedSources() {
	cfg := conf.New()

	base := []byte("[server]\nhost = \"localhost\"\nport = 8080\n")
	extra := []byte("server:\n  timeout: 30\n")

	if err := cfg.LoadBytes(tomlparser.NewParser(), base, ""); err != nil {
		fmt.Println("error:", err)

		return
	}

	if err := cfg.LoadBytes(yamlparser.NewParser(), extra, ""); err != nil {
		fmt.Println("error:", err)

		return
	}

	host, _ := conf.Get[string](cfg, "server.host")
	timeout, _ := conf.Get[int64](cfg, "server.timeout")

	fmt.Printf("host: %s timeout: %d\n", host, timeout)
	// Output:
	// host: localhost timeout: 30
}

// ExampleNewModule demonstrates providing a loaded Config to an fx graph.
func ExampleNewModule() {
	var host string

	app := fx.New(
		fx.NopLogger,
		conf.NewModule("app",
			conf.WithFile(tomlparser.NewParser(), "testdata/config.toml", ""),
			conf.WithLogLevel("error"),
		),
		fx.Invoke(
			fx.Annotate(
				func(cfg *conf.Config) {
					host, _ = conf.Get[string](cfg, "server.host")
				},
				fx.ParamTags(`name:"app"`),
			),
		),
	)

	if err := app.Err(); err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("host:", host)
	// Output:
	// host: api.example.com
}
