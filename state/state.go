package state

import (
	"context"
	"os"

	"avisame/composer"
	"avisame/config"
	"avisame/contacts"
	"avisame/history"
	"avisame/interpreter"
	"avisame/llm"
	"avisame/negotiation"
	"avisame/pending"
	"avisame/scheduler"
	"avisame/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/infinitybotlist/eureka/snippets"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Logger    *zap.SugaredLogger
	Context   = context.Background()
	Validator = validator.New()

	Config *config.Config

	Model  *llm.Client
	Twilio *whatsapp.Client

	Contacts *contacts.Resolver
	History  *history.Log

	Store       pending.Store
	Dispatcher  *scheduler.Dispatcher
	Interpreter *interpreter.Interpreter
	Composer    *composer.Composer
	Engine      *negotiation.Engine
)

func Setup() {
	Logger = snippets.CreateZap().Sugar()

	Validator.RegisterValidation("notblank", validators.NotBlank)

	genconfig.GenConfig(config.Config{})

	cfg, err := os.ReadFile("config.yaml")

	if err != nil {
		panic(err)
	}

	err = yaml.Unmarshal(cfg, &Config)

	if err != nil {
		panic(err)
	}

	err = Validator.Struct(Config)

	if err != nil {
		panic("configError: " + err.Error())
	}

	Pool, err = pgxpool.New(Context, Config.Meta.PostgresURL)

	if err != nil {
		panic(err)
	}

	err = Pool.Ping(Context)

	if err != nil {
		panic(err)
	}

	rOptions, err := redis.ParseURL(Config.Meta.RedisURL)

	if err != nil {
		panic(err)
	}

	Redis = redis.NewClient(rOptions)

	err = Redis.Ping(Context).Err()

	if err != nil {
		panic(err)
	}

	Model = llm.New(Config.Model, Logger)
	Twilio = whatsapp.New(Config.Twilio, Logger)

	Contacts = contacts.New(Config.Contacts)
	History = history.New(Pool, Logger)

	err = History.Init(Context)

	if err != nil {
		panic(err)
	}

	Store = pending.NewRedis(Redis)
	Dispatcher = scheduler.New(Twilio, Logger)
	Interpreter = interpreter.New(Model, Logger)
	Composer = composer.New(Model, Logger)
	Engine = negotiation.NewEngine(Store, Composer, Dispatcher, Logger)
}
