// Package cli provides the graphserver command-line interface: a
// cobra root command that boots the HTTP server, and a migrate
// subcommand that creates the relational schema. Configuration is
// assembled from flags, environment variables and an optional config
// file via viper, the same layering the teacher service used.
package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reqgraph.dev/api"
	"reqgraph.dev/common"
	"reqgraph.dev/config"
	reqgraphhttp "reqgraph.dev/http"
	"reqgraph.dev/store"
	"reqgraph.dev/store/schema"
	"reqgraph.dev/worker"
)

var cfgFile string

// RootCmd is graphserver's entry point. With no subcommand it starts
// the HTTP server; "graphserver migrate" just creates the schema and
// exits.
var RootCmd = &cobra.Command{
	Use:   "graphserver",
	Short: "serves a persistent, typed graph store for requirements artifacts",
	Long: `graphserver exposes a small REST API over a relational graph store:

  GET  /graphs       list known graph roots
  GET  /graph/:id    load one graph, fully resolved, as JSON
  POST /graph/:id    replace one graph from a JSON archive

Configuration is read from flags, environment variables, and an
optional config file, in that order of precedence.`,
	Run: runServer,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "create the graph store's tables if they don't already exist",
	Run:   runMigrate,
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.graphserver.yaml)")
	RootCmd.PersistentFlags().String("address", "", "HTTP listen address")
	RootCmd.PersistentFlags().String("port", "", "HTTP listen port")
	RootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection string")
	RootCmd.PersistentFlags().Int("workers", 0, "worker pool size for field loads and saves")

	viper.BindPFlag("address", RootCmd.PersistentFlags().Lookup("address"))
	viper.BindPFlag("port", RootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("database.url", RootCmd.PersistentFlags().Lookup("database-url"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))

	RootCmd.AddCommand(migrateCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".graphserver")
	}

	viper.SetEnvPrefix("GRAPHSERVER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("using config file:", viper.ConfigFileUsed())
	}
}

func databaseURL() string {
	if url := viper.GetString("database.url"); url != "" {
		return url
	}
	return config.LoadDatabaseConfig("GRAPHSERVER").URL
}

func listenAddress() string {
	if addr := viper.GetString("address"); addr != "" {
		return addr
	}
	return "127.0.0.1"
}

func workerCount() int {
	if n := viper.GetInt("workers"); n > 0 {
		return n
	}
	return 8
}

// loadServiceConfig validates the service-identity environment
// variables (name, deployment environment, log level) the way the
// teacher's ConfigLoader always did before a service was allowed to
// start, even though graphserver's actual listen port and database URL
// are layered through viper/cobra instead.
func loadServiceConfig() config.ServiceConfig {
	svc := config.LoadServiceConfig("GRAPHSERVER")
	if svc.Name == "" {
		svc.Name = "graphserver"
	}
	validator := config.NewValidator()
	validator.RequireString("Service.Name", svc.Name)
	validator.RequireOneOf("Service.Environment", svc.Environment, []string{"development", "staging", "production"})
	validator.RequireOneOf("Service.LogLevel", svc.LogLevel, []string{"debug", "info", "warn", "error"})
	if err := validator.Validate(); err != nil {
		log.Fatalf("invalid service configuration: %v", err)
	}
	return svc
}

func runMigrate(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	db, err := store.Open(ctx, databaseURL())
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Close()

	if err := schema.Bootstrap(ctx, db.Pool()); err != nil {
		log.Fatalf("bootstrap schema: %v", err)
	}
	fmt.Println("schema up to date")
}

func runServer(cmd *cobra.Command, args []string) {
	svc := loadServiceConfig()
	logger := common.ServiceLogger(svc.Name, svc.Version)
	logger.Info("starting graphserver")

	ctx := context.Background()

	db, err := store.Open(ctx, databaseURL())
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Close()

	if err := schema.Bootstrap(ctx, db.Pool()); err != nil {
		log.Fatalf("bootstrap schema: %v", err)
	}

	gdb, err := store.OpenGORM(databaseURL())
	if err != nil {
		log.Fatalf("open locator connection: %v", err)
	}

	pool := worker.New(ctx, workerCount())
	defer pool.Shutdown()

	srvConfig := reqgraphhttp.DefaultServerConfig()
	srvConfig.Host = listenAddress()
	srvConfig.Port = reqgraphhttp.GetPortInt(viper.GetString("port"), srvConfig.Port)

	e := reqgraphhttp.NewEchoServer(srvConfig)
	e.HTTPErrorHandler = reqgraphhttp.CustomHTTPErrorHandler
	e.Use(reqgraphhttp.SecurityHeadersMiddleware())
	e.Use(reqgraphhttp.JSONContentTypeMiddleware())
	e.GET("/healthz", reqgraphhttp.HealthCheckHandlerWithDetails(svc.Name, svc.Version, func() map[string]interface{} {
		return map[string]interface{}{
			"workers":         pool.Len(),
			"database_status": pingStatus(ctx, db),
		}
	}))

	api.RegisterRoutes(e, &api.Handlers{DB: db, GDB: gdb, Pool: pool, Saves: pool})

	go func() {
		if err := reqgraphhttp.StartServer(e, srvConfig); err != nil && err != http.ErrServerClosed {
			log.Fatalf("start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := reqgraphhttp.GracefulShutdown(e, srvConfig.ShutdownTimeout); err != nil {
		log.Fatal(err)
	}
}

func pingStatus(ctx context.Context, db *store.DB) string {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return "unreachable"
	}
	defer tx.Rollback(ctx)
	return "ok"
}
