package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/almamun2b/portfolio-api/pkg/internal"
	"github.com/almamun2b/portfolio-api/pkg/internal/cache"
	"github.com/almamun2b/portfolio-api/pkg/internal/database"
	"github.com/almamun2b/portfolio-api/pkg/internal/http"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/api"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____            _    __       _ _\n|  _ \\ ___  _ __| |_ / _| ___ | (_) ___\n| |_) / _ \\| '__| __| |_ / _ \\| | |/ _ \\\n|  __/ (_) | |  | |_|  _| (_) | | | (_) |\n|_|   \\___/|_|   \\__|_|  \\___/|_|_|\\___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Portfolio API"), pkg.AppVersion)
	fmt.Printf("The backend of the personal portfolio site\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Set up the in-memory cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up the cache.")
	}

	// Connect to database
	source, err := database.NewSource(viper.GetString("database.dsn"))
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(source); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Build services
	users := services.NewUserService(source, viper.GetInt("security.bcrypt_cost"))
	auth := services.NewAuthService(source, viper.GetString("security.jwt_secret"))
	categories := services.NewCategoryService(source)
	posts := services.NewPostService(source)
	projects := services.NewProjectService(source)

	if err := users.SeedSuperAdmin(
		viper.GetString("seed.super_admin_email"),
		viper.GetString("seed.super_admin_password"),
	); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when seeding the super admin.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", func() { services.DoAutoDatabaseCleanup(source) })
	quartz.Start()

	// Server
	server := http.NewServer(api.NewControllers(users, auth, categories, posts, projects))
	go server.Listen(viper.GetString("http.bind"))

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
