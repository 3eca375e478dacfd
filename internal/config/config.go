package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Database   `yaml:"database"`
	HTTPServer `yaml:"http_server"`
	Admin      Admin     `yaml:"admin"`
	Catalog    Catalog   `yaml:"catalog"`
	Favorites  Favorites `yaml:"favorites"`
}

type Database struct {
	Host       string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port       int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	UsernameDB string `yaml:"username-db" env:"DB_USER" env-default:"root"`
	Password   string `yaml:"password" env:"DB_PASSWORD"`
	DBName     string `yaml:"dbname" env:"DB_NAME" env-default:"gamecatalog"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	Cors        []string      `yaml:"cors" env-default:"http://localhost:5173"`
}

type Admin struct {
	Login    string `yaml:"login" env:"ADMIN_LOGIN" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-required:"true"`
}

// Catalog selects the game source backing the API: "db" serves from the
// relational store, "memory" serves the built-in fixtures so the whole API
// can run without a database.
type Catalog struct {
	Source       string `yaml:"source" env:"CATALOG_SOURCE" env-default:"db"`
	SnapshotPath string `yaml:"snapshot_path" env:"CATALOG_SNAPSHOT_PATH"`
}

type Favorites struct {
	LocalCachePath string `yaml:"local_cache_path" env:"FAVORITES_CACHE_PATH" env-default:"favorites_cache.db"`
}

func MustLoad() *Config {
	configPath := flag.String("config", "", "path to config yaml file")
	flag.Parse()
	if *configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", *configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(*configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s - %s", *configPath, err)
	}

	return &cfg
}

func (cfg *Database) GetDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.UsernameDB,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)
}
