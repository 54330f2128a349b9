package config

type App struct {
	Port         string `env:"APP_PORT" default:"8080"`
	DatabaseURL  string `env:"DATABASE_URL"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	ApiNinjasKey string `env:"API_NINJAS_KEY"`
	StaticDir    string `env:"STATIC_DIR" default:"public"`
	Env          string `env:"APP_ENV" default:"dev"`
}
